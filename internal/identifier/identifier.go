package identifier

import "github.com/google/uuid"

// New returns a fresh identifier that is not already in use within the
// caller's scope. taken reports whether a candidate id is present in that
// scope; on the off chance of a collision a new candidate is drawn.
func New(taken func(string) bool) string {
	id := uuid.New().String()
	if taken == nil {
		return id
	}
	for taken(id) {
		id = uuid.New().String()
	}
	return id
}
