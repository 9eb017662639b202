package entities

import "errors"

// Domain errors surfaced at the quote request boundary. Everything past
// validation is total-defined: degenerate volumes clamp instead of failing.
var (
	// ErrInvalidGeometry indicates a non-positive dimension, volume, area,
	// or count in the geometry collaborator's output.
	ErrInvalidGeometry = errors.New("invalid geometry metrics")

	// ErrInvalidQuantity indicates a non-positive order quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrConflictingShipping indicates that both a shipping tier and a
	// legacy expedited-days option were specified on the same request.
	ErrConflictingShipping = errors.New("shipping tier and expedited-days option are mutually exclusive")

	// ErrNoFittingBlock indicates the bounding box exceeds every entry in
	// the stock catalog. This is a catalog coverage problem, not a part problem.
	ErrNoFittingBlock = errors.New("no stock block fits the bounding box")
)
