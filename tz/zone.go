// Package tz provides:
//
// - The Zone and Source interfaces the chronos value model consumes
// - Fixed-offset zones with canonical "UTC"/"UTC+05:30"-style ids
// - Cache, a validated, memoizing front for an external (possibly slow) Source
// - MapSource (optionally YAML-loaded) and LocationSource implementations
//
// Transition resolution, meaning how a zone answers "what offset applies at
// instant X", belongs to Zone implementations; this package only orchestrates
// lookup, validation and memoization.
package tz

import (
	chronos "github.com/reoring/chronos"
)

// Zone is a time zone: a named mapping from instants to UTC offsets.
// Implementations must be immutable and safe for concurrent use.
type Zone interface {
	// ID returns the zone identifier, e.g. "Europe/Paris" or "UTC+02".
	ID() string
	// OffsetAt returns the UTC offset in effect at the given instant.
	OffsetAt(i chronos.Instant) (chronos.Offset, error)
}

// Source provides zones by id. Sources are external and untrusted: Cache
// validates this contract at construction and on every fetch.
//
// Contract:
//   - VersionID returns a non-empty version string.
//   - IDs returns a non-nil slice with no empty elements. Duplicates are
//     tolerated (later entries win).
//   - ForID returns a non-nil Zone for every id advertised by IDs; nil is
//     only acceptable for unadvertised ids.
//   - SystemDefaultID returns "" when no default is known.
//
// A Source may be slow or blocking; Cache exists to pay its cost at most
// once per id.
type Source interface {
	VersionID() string
	IDs() []string
	SystemDefaultID() string
	ForID(id string) Zone
}
