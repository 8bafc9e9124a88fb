package codec

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chronos "github.com/reoring/chronos"
)

type meeting struct {
	Name   string             `json:"name"`
	Starts JSONOffsetDateTime `json:"starts"`
	Zone   JSONOffset         `json:"zone"`
}

func TestJSONAdapters_RoundTrip(t *testing.T) {
	starts, err := ParseOffsetDateTime("2013-03-04T20:21:00+01:00")
	require.NoError(t, err)

	in := meeting{
		Name:   "standup",
		Starts: JSONOffsetDateTime{OffsetDateTime: starts},
		Zone:   JSONOffset{Offset: chronos.MustOffsetFromHours(1)},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"standup","starts":"2013-03-04T20:21:00+01:00","zone":"+01:00"}`, string(data))

	var out meeting
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Starts.Equal(in.Starts.OffsetDateTime))
	assert.True(t, out.Zone.Equal(in.Zone.Offset))
}

func TestJSONAdapters_Failures(t *testing.T) {
	var o JSONOffset
	require.Error(t, json.Unmarshal([]byte(`42`), &o))
	require.Error(t, json.Unmarshal([]byte(`"+25:00"`), &o))

	var v JSONOffsetDateTime
	require.Error(t, json.Unmarshal([]byte(`"2013-02-30T00:00:00Z"`), &v))

	// Calling the adapter directly surfaces the coded Issue.
	err := o.UnmarshalJSON([]byte(`"not-an-offset"`))
	assert.True(t, chronos.IsCode(err, CodeInvalidFormat))
}
