package ingest

import "errors"

// Sentinel errors for input parsing.
var (
	// ErrTruncated indicates the stream ended in the middle of a case.
	ErrTruncated = errors.New("ingest: truncated case")

	// ErrBadInteger indicates a token that is not a base-10 integer.
	ErrBadInteger = errors.New("ingest: malformed integer")

	// ErrNegativeCount indicates a negative node, edge, query or route count.
	ErrNegativeCount = errors.New("ingest: negative count")

	// ErrBadRoute indicates an obstacle route leg with no street between its ends.
	ErrBadRoute = errors.New("ingest: route leg has no street")

	// ErrUnknownKind indicates an unsupported problem kind name.
	ErrUnknownKind = errors.New("ingest: unknown problem kind")
)
