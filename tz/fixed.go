package tz

import (
	"strings"

	chronos "github.com/reoring/chronos"
	"github.com/reoring/chronos/codec"
)

// FixedZone is a zone whose offset never changes. Fixed zones are cheap
// values: lookups construct them on demand rather than caching them.
type FixedZone struct {
	id     string
	offset chronos.Offset
}

// UTC is the fixed zone with a zero offset and the canonical id "UTC".
var UTC = &FixedZone{id: "UTC"}

// NewFixedZone returns a fixed zone with an explicit id.
func NewFixedZone(id string, offset chronos.Offset) *FixedZone {
	return &FixedZone{id: id, offset: offset}
}

// FixedZoneFor returns the fixed zone for offset under its canonical id.
func FixedZoneFor(offset chronos.Offset) *FixedZone {
	return &FixedZone{id: FixedZoneID(offset), offset: offset}
}

// ID returns the zone identifier.
func (z *FixedZone) ID() string { return z.id }

// Offset returns the constant offset of this zone.
func (z *FixedZone) Offset() chronos.Offset { return z.offset }

// OffsetAt returns the constant offset regardless of the instant.
func (z *FixedZone) OffsetAt(chronos.Instant) (chronos.Offset, error) {
	return z.offset, nil
}

// FixedZoneID returns the canonical id for a fixed offset: "UTC" for zero,
// otherwise "UTC" plus the trimmed general offset form, e.g. "UTC+05",
// "UTC-03:30", "UTC+05:30:15".
func FixedZoneID(offset chronos.Offset) string {
	if offset.Seconds() == 0 {
		return "UTC"
	}
	return "UTC" + offset.String()
}

// FixedZoneForID recognizes canonical fixed-offset ids and returns the
// corresponding zone, or nil when id is not of that family. No external
// source is ever consulted.
func FixedZoneForID(id string) *FixedZone {
	if id == "UTC" {
		return UTC
	}
	rest, ok := strings.CutPrefix(id, "UTC")
	if !ok || rest == "" || (rest[0] != '+' && rest[0] != '-') {
		return nil
	}
	offset, err := codec.ParseOffset(rest)
	if err != nil {
		return nil
	}
	// Only the canonical spelling is recognized; "UTC+5" or "UTC+05:00" do
	// not round-trip through FixedZoneID and are rejected.
	if FixedZoneID(offset) != id {
		return nil
	}
	return &FixedZone{id: id, offset: offset}
}
