package domain

import "github.com/google/uuid"

// Criteria is what a candidate store receives for one kind. ViewerID is
// uuid.Nil for anonymous searches; the store uses it for its visibility
// pre-filter.
type Criteria struct {
	Query    Query
	ViewerID uuid.UUID

	// Limit and Offset bound the rows returned. Total counts are always
	// computed without them.
	Limit  int
	Offset int
}
