package sentinel

import "errors"

// Sentinel errors for infrastructure facts. In-memory structures return these
// (optionally wrapped) so the engine can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in the structure
// - ErrEmpty: the structure holds no elements to consume
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound = errors.New("not found")
	ErrEmpty    = errors.New("empty")
)
