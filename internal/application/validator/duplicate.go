package validator

import "github.com/google/uuid"

// HasConflict applies the duplicate policy to the identities of the records
// whose identity tuple matched a candidate. A candidate without identity
// conflicts with any match; a persisted candidate only conflicts with
// records other than itself.
func HasConflict(candidateID uuid.UUID, matchIDs ...uuid.UUID) bool {
	for _, id := range matchIDs {
		if candidateID == uuid.Nil || id != candidateID {
			return true
		}
	}
	return false
}
