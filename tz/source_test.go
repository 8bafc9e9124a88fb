package tz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chronos "github.com/reoring/chronos"
)

const catalogueYAML = `
version: "2025a"
default: "Europe/Paris"
zones:
  Europe/Paris: "+01"
  America/Denver: "-07:00"
  Etc/UTC: "Z"
`

func TestLoadMapSource_YAMLCatalogue(t *testing.T) {
	src, err := LoadMapSource([]byte(catalogueYAML))
	require.NoError(t, err)
	assert.Equal(t, "2025a", src.VersionID())
	assert.Equal(t, "Europe/Paris", src.SystemDefaultID())
	assert.Len(t, src.IDs(), 3)

	c, err := NewCache(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"America/Denver", "Etc/UTC", "Europe/Paris"}, c.IDs())

	z, err := c.Get("Europe/Paris")
	require.NoError(t, err)
	fixed, ok := z.(*FixedZone)
	require.True(t, ok)
	assert.Equal(t, 3600, fixed.Offset().Seconds())

	def, err := c.SystemDefault()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", def.ID())
}

func TestLoadMapSource_Failures(t *testing.T) {
	t.Run("not yaml", func(t *testing.T) {
		_, err := LoadMapSource([]byte("\t:"))
		assert.True(t, chronos.IsCode(err, chronos.CodeInvalidFormat))
	})
	t.Run("missing version", func(t *testing.T) {
		_, err := LoadMapSource([]byte("zones:\n  A: \"+01\"\n"))
		assert.True(t, chronos.IsCode(err, chronos.CodeInvalidFormat))
	})
	t.Run("bad offset text", func(t *testing.T) {
		_, err := LoadMapSource([]byte("version: \"1\"\nzones:\n  A: \"+25\"\n"))
		require.Error(t, err)
		is, ok := chronos.AsIssue(err)
		require.True(t, ok)
		assert.Equal(t, "A", is.Params["id"])
	})
}

func TestLocationSource_ResolvesUTC(t *testing.T) {
	src := NewLocationSource("tzdata", []string{"UTC"}, "UTC")
	c, err := NewCache(src)
	require.NoError(t, err)

	z, err := c.Get("UTC")
	require.NoError(t, err)
	off, err := z.OffsetAt(chronos.UnixEpoch)
	require.NoError(t, err)
	assert.Equal(t, 0, off.Seconds())

	def, err := c.SystemDefault()
	require.NoError(t, err)
	assert.Equal(t, "UTC", def.ID())
}

func TestLocationSource_UnloadableAdvertisedIDSurfacesAsContractViolation(t *testing.T) {
	src := NewLocationSource("tzdata", []string{"Not/AZone"}, "")
	c, err := NewCache(src)
	require.NoError(t, err)

	_, err = c.Get("Not/AZone")
	assert.True(t, chronos.IsCode(err, chronos.CodeSourceContract))
}
