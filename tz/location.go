package tz

import (
	"time"

	chronos "github.com/reoring/chronos"
)

// LocationZone adapts a stdlib *time.Location to the Zone interface, so the
// platform tzdata (or the time/tzdata fallback) can serve real zones.
// Transition resolution is delegated wholly to the standard library.
type LocationZone struct {
	loc *time.Location
}

// NewLocationZone wraps loc.
func NewLocationZone(loc *time.Location) *LocationZone {
	return &LocationZone{loc: loc}
}

// ID returns the location name.
func (z *LocationZone) ID() string { return z.loc.String() }

// OffsetAt returns the offset the location applies at the given instant.
func (z *LocationZone) OffsetAt(i chronos.Instant) (chronos.Offset, error) {
	secs := int64(i.DaysSinceEpoch())*chronos.SecondsPerDay + i.NanosecondOfDay()/chronos.NanosecondsPerSecond
	_, off := time.Unix(secs, 0).In(z.loc).Zone()
	return chronos.OffsetFromSeconds(off)
}

// LocationSource is a Source over an explicit id list, resolving zones via
// time.LoadLocation. The id list is the catalogue: advertising an id that
// the platform tzdata cannot load surfaces as a source-contract violation
// at lookup time, which is the honest signal for a broken install.
type LocationSource struct {
	version   string
	ids       []string
	defaultID string
}

// NewLocationSource builds a source advertising exactly ids.
func NewLocationSource(version string, ids []string, defaultID string) *LocationSource {
	return &LocationSource{version: version, ids: ids, defaultID: defaultID}
}

// VersionID returns the configured version string.
func (s *LocationSource) VersionID() string { return s.version }

// IDs returns the advertised ids.
func (s *LocationSource) IDs() []string { return s.ids }

// SystemDefaultID returns the configured default id, "" when none.
func (s *LocationSource) SystemDefaultID() string { return s.defaultID }

// ForID loads the location for id, nil when it cannot be loaded.
func (s *LocationSource) ForID(id string) Zone {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil
	}
	return NewLocationZone(loc)
}
