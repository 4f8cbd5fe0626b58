package catalogue

import "errors"

// Sentinel errors for the referential-integrity error class. Callers use
// errors.Is against these, the way the teacher checks
// errors.Is(err, pgx.ErrNoRows) in internal/repository/line_repo.go.
var (
	ErrDuplicateStop = errors.New("catalogue: stop already exists")
	ErrDuplicateBus  = errors.New("catalogue: bus already exists")
	ErrUnknownStop   = errors.New("catalogue: unknown stop")
	ErrBadRoundtrip  = errors.New("catalogue: roundtrip bus must start and end at the same stop")
)
