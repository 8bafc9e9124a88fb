package tz

import (
	chronos "github.com/reoring/chronos"
	"github.com/reoring/chronos/codec"
	"gopkg.in/yaml.v3"
)

// MapSource is an in-memory Source over a fixed id->Zone map. It is the
// simplest honest implementation of the Source contract and the backing for
// YAML-loaded catalogues.
type MapSource struct {
	version   string
	defaultID string
	zones     map[string]Zone
}

// NewMapSource builds a source from a zone map. The map is not copied; the
// caller must not mutate it afterwards.
func NewMapSource(version, defaultID string, zones map[string]Zone) *MapSource {
	return &MapSource{version: version, defaultID: defaultID, zones: zones}
}

// VersionID returns the catalogue version string.
func (s *MapSource) VersionID() string { return s.version }

// IDs returns the advertised zone ids (unsorted; Cache sorts).
func (s *MapSource) IDs() []string {
	ids := make([]string, 0, len(s.zones))
	for id := range s.zones {
		ids = append(ids, id)
	}
	return ids
}

// SystemDefaultID returns the configured default id, "" when none.
func (s *MapSource) SystemDefaultID() string { return s.defaultID }

// ForID returns the zone for id, nil when unadvertised.
func (s *MapSource) ForID(id string) Zone { return s.zones[id] }

// catalogueDoc is the YAML shape of a shippable fixed-offset catalogue:
//
//	version: "2025a"
//	default: "Europe/Paris"
//	zones:
//	  Europe/Paris: "+01"
//	  America/Denver: "-07:00"
//	  Etc/UTC: "Z"
type catalogueDoc struct {
	Version string            `yaml:"version"`
	Default string            `yaml:"default"`
	Zones   map[string]string `yaml:"zones"`
}

// LoadMapSource reads a YAML catalogue of fixed-offset zones into a
// MapSource. Offsets use the codec text forms ("Z", "+05", "-03:30").
func LoadMapSource(data []byte) (*MapSource, error) {
	var doc catalogueDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, chronos.Issue{Code: chronos.CodeInvalidFormat, Message: "invalid zone catalogue YAML", Cause: err}
	}
	if doc.Version == "" {
		return nil, chronos.NewIssue(chronos.CodeInvalidFormat, "zone catalogue is missing a version")
	}
	zones := make(map[string]Zone, len(doc.Zones))
	for id, text := range doc.Zones {
		if id == "" {
			return nil, chronos.NewIssue(chronos.CodeInvalidFormat, "zone catalogue contains an empty id")
		}
		offset, err := codec.ParseOffset(text)
		if err != nil {
			return nil, chronos.Issue{
				Code:    chronos.CodeInvalidFormat,
				Message: "invalid offset in zone catalogue",
				Cause:   err,
				Params:  map[string]any{"id": id, "offset": text},
			}
		}
		zones[id] = NewFixedZone(id, offset)
	}
	return NewMapSource(doc.Version, doc.Default, zones), nil
}
