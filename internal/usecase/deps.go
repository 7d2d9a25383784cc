package usecase

import "time"

// Clock supplies the current time; injected so tests control
// last_status_change and creation timestamps.
type Clock interface {
	Now() time.Time
}

// TokenSource generates order token candidates. Candidates are checked
// against the store before use, so the source itself need not guarantee
// uniqueness — only enough randomness that 100 attempts practically never
// all collide.
type TokenSource interface {
	Token() string
}
