// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/http/dto"
	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/menuitem"
	"github.com/jsamuelsen11/menu-cms/internal/domain/offer"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// multipartMemory is how much of a multipart body is held in memory before
// file parts spill to disk.
const multipartMemory = 8 << 20

// dataPart is the multipart field carrying the JSON entity.
const dataPart = "data"

// uploadSlots are the multipart file fields read on save. Slots a kind does
// not carry are ignored by the catalog service.
var uploadSlots = []domain.ImageSlot{domain.ImageHero, domain.ImageSquare}

// CatalogHandler handles HTTP requests for one manually ordered collection.
// T is the domain entity and R its response representation.
type CatalogHandler[T, R any] struct {
	svc            ports.CatalogService[T]
	newRequest     func() dto.Request[T]
	toResponse     func(T) R
	maxUploadBytes int64
}

// NewCatalogHandler creates a CatalogHandler. newRequest returns a pointer
// to an empty request body for the kind.
func NewCatalogHandler[T, R any](
	svc ports.CatalogService[T],
	newRequest func() dto.Request[T],
	toResponse func(T) R,
	maxUploadBytes int64,
) *CatalogHandler[T, R] {
	return &CatalogHandler[T, R]{
		svc:            svc,
		newRequest:     newRequest,
		toResponse:     toResponse,
		maxUploadBytes: maxUploadBytes,
	}
}

// NewCategoryHandler creates the handler for /categories.
func NewCategoryHandler(
	svc ports.CatalogService[category.Category],
	maxUploadBytes int64,
) *CatalogHandler[category.Category, dto.CategoryResponse] {
	return NewCatalogHandler(svc, func() dto.Request[category.Category] {
		return &dto.CategoryRequest{}
	}, dto.ToCategoryResponse, maxUploadBytes)
}

// NewMenuItemHandler creates the handler for /menu-items.
func NewMenuItemHandler(
	svc ports.CatalogService[menuitem.MenuItem],
	maxUploadBytes int64,
) *CatalogHandler[menuitem.MenuItem, dto.MenuItemResponse] {
	return NewCatalogHandler(svc, func() dto.Request[menuitem.MenuItem] {
		return &dto.MenuItemRequest{}
	}, dto.ToMenuItemResponse, maxUploadBytes)
}

// NewOfferHandler creates the handler for /offers.
func NewOfferHandler(
	svc ports.CatalogService[offer.Offer],
	maxUploadBytes int64,
) *CatalogHandler[offer.Offer, dto.OfferResponse] {
	return NewCatalogHandler(svc, func() dto.Request[offer.Offer] {
		return &dto.OfferRequest{}
	}, dto.ToOfferResponse, maxUploadBytes)
}

// List handles GET /api/v1/{kind}.
func (h *CatalogHandler[T, R]) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(all, h.toResponse))
}

// Get handles GET /api/v1/{kind}/{id}.
func (h *CatalogHandler[T, R]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(e))
}

// Create handles POST /api/v1/{kind}. The body is the JSON entity, or a
// multipart form with the entity in the "data" part and optional
// hero_image / square_image files.
func (h *CatalogHandler[T, R]) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "", http.StatusCreated)
}

// Update handles PUT /api/v1/{kind}/{id} with the same body shapes as Create.
func (h *CatalogHandler[T, R]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.save(w, r, id, http.StatusOK)
}

func (h *CatalogHandler[T, R]) save(w http.ResponseWriter, r *http.Request, id string, status int) {
	entity, uploads, cleanup, ok := h.readEntity(w, r)
	if !ok {
		return
	}
	defer cleanup()

	saved, err := h.svc.Save(r.Context(), id, entity, uploads)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, status, h.toResponse(saved))
}

// Delete handles DELETE /api/v1/{kind}/{id}.
func (h *CatalogHandler[T, R]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles PUT /api/v1/{kind}/order. The assignment is applied as one
// batch; a rejected batch responds 409 with nothing changed.
func (h *CatalogHandler[T, R]) Reorder(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.Reorder(r.Context(), req.Pairs()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Move handles POST /api/v1/{kind}/move. It responds with the sequence as it
// looks after the move; the new order values are written in the background.
func (h *CatalogHandler[T, R]) Move(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	seq, err := h.svc.Move(r.Context(), req.SourceID, req.DestinationID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(seq, h.toResponse))
}

// readEntity decodes the save body. The returned cleanup closes uploaded
// files and removes their temporary copies. On failure it writes an error
// response and returns false.
func (h *CatalogHandler[T, R]) readEntity(
	w http.ResponseWriter, r *http.Request,
) (T, map[domain.ImageSlot]ports.Upload, func(), bool) {
	var zero T
	req := h.newRequest()

	if !isMultipart(r) {
		if !decodeJSONBody(w, r, req) {
			return zero, nil, nil, false
		}
		return req.ToDomain(), nil, func() {}, true
	}

	limit := h.maxUploadBytes*int64(len(uploadSlots)) + maxJSONBodyBytes
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		dto.WriteErrorResponse(w, r, invalidBody(err))
		return zero, nil, nil, false
	}

	var files []io.Closer
	cleanup := func() {
		for _, f := range files {
			_ = f.Close()
		}
		_ = r.MultipartForm.RemoveAll()
	}

	data := r.FormValue(dataPart)
	if data == "" {
		cleanup()
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{dataPart: domain.MsgRequired},
		})
		return zero, nil, nil, false
	}
	if err := json.Unmarshal([]byte(data), req); err != nil {
		cleanup()
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{dataPart: "invalid JSON"},
		})
		return zero, nil, nil, false
	}

	uploads := make(map[domain.ImageSlot]ports.Upload)
	for _, slot := range uploadSlots {
		file, header, err := r.FormFile(slot.String())
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			cleanup()
			dto.WriteErrorResponse(w, r, &domain.ValidationError{
				Fields: map[string]string{slot.String(): "unreadable file"},
			})
			return zero, nil, nil, false
		}
		files = append(files, file)
		uploads[slot] = ports.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        file,
		}
	}

	return req.ToDomain(), uploads, cleanup, true
}
