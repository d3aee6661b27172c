// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/category,
// domain/menuitem, domain/offer) and the pure sequencing logic lives in
// domain/ordering. This root package holds sentinel errors, validation
// types, the Record capability set and domain-level interfaces (Action,
// WriteStager) that are shared across all entities.
package domain
