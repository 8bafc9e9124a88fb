package tz

import (
	"sort"
	"sync/atomic"

	chronos "github.com/reoring/chronos"
)

// zoneBox wraps a resolved zone so a slot can distinguish "unresolved"
// (nil pointer) from any resolved value with a single atomic pointer.
type zoneBox struct {
	zone Zone
}

// zoneSlot is the per-id state: nil until the first successful fetch, then
// permanently the winning zone. The slot map itself is immutable after
// construction, so every read is lock-free.
type zoneSlot struct {
	p atomic.Pointer[zoneBox]
}

// Cache wraps a Source, validates its contract at construction, and serves
// zone lookups with at-most-once-per-id materialization plus a fixed-offset
// fast path that never consults the source.
//
// Concurrency: the only shared mutable state is the per-id atomic pointer.
// Racing first lookups of one id may each invoke the source; exactly one
// result is retained (first compare-and-swap wins) and every caller observes
// that one zone. There is no cross-id locking or ordering.
type Cache struct {
	source  Source
	version string
	ids     []string
	slots   map[string]*zoneSlot
}

// NewCache validates source's contract and builds the cache: the version id
// must be non-empty, the id slice non-nil with no empty elements. Every
// advertised id is pre-registered unresolved; duplicates collapse. The
// catalogue is sorted by byte value and fixed for the cache's lifetime.
func NewCache(source Source) (*Cache, error) {
	if source == nil {
		return nil, chronos.NewIssue(chronos.CodeArgument, "source must not be nil")
	}
	version := source.VersionID()
	if version == "" {
		return nil, chronos.NewIssue(chronos.CodeSourceContract, "source returned an empty version id")
	}
	ids := source.IDs()
	if ids == nil {
		return nil, chronos.NewIssue(chronos.CodeSourceContract, "source returned a nil id catalogue")
	}
	slots := make(map[string]*zoneSlot, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, chronos.Issuef(chronos.CodeSourceContract, "source catalogue (version %s) contains an empty id", version)
		}
		if _, ok := slots[id]; !ok {
			slots[id] = &zoneSlot{}
		}
	}
	sorted := make([]string, 0, len(slots))
	for id := range slots {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)
	return &Cache{source: source, version: version, ids: sorted, slots: slots}, nil
}

// VersionID returns the source's version id captured at construction.
func (c *Cache) VersionID() string { return c.version }

// IDs returns the sorted catalogue of known zone ids.
func (c *Cache) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Lookup resolves id to a zone, or nil when neither the catalogue nor the
// fixed-offset naming scheme recognizes it. A catalogued id whose fetch
// violates the source contract returns a source-contract error.
func (c *Cache) Lookup(id string) (Zone, error) {
	if slot, ok := c.slots[id]; ok {
		return c.resolve(id, slot)
	}
	// Ids outside the catalogue may still name a fixed-offset zone; those
	// are constructed on demand without touching the source.
	if z := FixedZoneForID(id); z != nil {
		return z, nil
	}
	return nil, nil
}

// Get resolves id to a zone, failing with a zone-not-found error (naming the
// id and the source version) when it does not resolve.
func (c *Cache) Get(id string) (Zone, error) {
	z, err := c.Lookup(id)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, chronos.Issue{
			Code:    chronos.CodeZoneNotFound,
			Message: "time zone id is unknown to the source",
			Params:  map[string]any{"id": id, "version": c.version},
		}
	}
	return z, nil
}

// SystemDefault resolves the source's default id, failing with a
// zone-not-found error when the source reports none or an unknown id.
func (c *Cache) SystemDefault() (Zone, error) {
	id := c.source.SystemDefaultID()
	if id == "" {
		return nil, chronos.Issue{
			Code:    chronos.CodeZoneNotFound,
			Message: "source reports no system default time zone",
			Params:  map[string]any{"version": c.version},
		}
	}
	return c.Get(id)
}

// resolve returns the memoized zone for a catalogued id, fetching it from
// the source on first use. A nil fetch result for an advertised id is a
// contract violation; the slot stays unresolved, so a later call retries
// the source rather than caching the failure.
func (c *Cache) resolve(id string, slot *zoneSlot) (Zone, error) {
	if box := slot.p.Load(); box != nil {
		return box.zone, nil
	}
	z := c.source.ForID(id)
	if z == nil {
		return nil, chronos.Issue{
			Code:    chronos.CodeSourceContract,
			Message: "source advertised an id but returned no zone for it",
			Params:  map[string]any{"id": id, "version": c.version},
		}
	}
	box := &zoneBox{zone: z}
	if !slot.p.CompareAndSwap(nil, box) {
		// Lost the race: the locally fetched zone is only a candidate.
		// Read back whatever the winner stored so all callers converge on
		// one zone object per id.
		box = slot.p.Load()
	}
	return box.zone, nil
}
