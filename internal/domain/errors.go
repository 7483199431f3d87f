package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency. Unknown-id
// errors are advisory: engine operations degrade to no-ops and report
// them, they are never fatal.

var (
	// Ledger errors
	ErrUnknownGoal    = errors.New("unknown goal id")
	ErrUnknownMission = errors.New("mission is not part of today's selection")

	// Import errors
	ErrBadSnapshot    = errors.New("snapshot is not a valid habit state document")
	ErrSchemaMismatch = errors.New("snapshot schema version is not supported")

	// Catalog errors
	ErrCatalogInvalid = errors.New("catalog failed validation")
)
