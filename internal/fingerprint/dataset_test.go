package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataset_JSON(t *testing.T) {
	doc := []byte(`{
		"RoomB": [[-90, -90, -90, -90, -90]],
		"RoomA": [[-40, -100, -55, -100, -100], [-42, -98, -57, -100, -100]]
	}`)

	ds, err := ParseDataset(doc, FormatJSON, testOrder(t))

	require.NoError(t, err)
	assert.Equal(t, 3, ds.SampleCount())
	assert.Equal(t, 5, ds.Dim())
	require.Len(t, ds.Rooms(), 2)
	assert.Equal(t, "RoomA", ds.Rooms()[0].Label)
	assert.Equal(t, Vector{-42, -98, -57, -100, -100}, ds.Rooms()[0].Samples[1])
}

func TestParseDataset_YAML(t *testing.T) {
	doc := []byte(`
RoomA:
  - [-40, -100, -55, -100, -100]
RoomB:
  - [-90, -90, -90, -90, -90]
  - [-88, -91, -90, -87, -90]
`)

	ds, err := ParseDataset(doc, FormatYAML, testOrder(t))

	require.NoError(t, err)
	assert.Equal(t, 3, ds.SampleCount())
	assert.Equal(t, "RoomB", ds.Rooms()[1].Label)
}

func TestParseDataset_Invalid(t *testing.T) {
	order := testOrder(t)

	_, err := ParseDataset([]byte(`{"RoomA": [[-40, -100]]}`), FormatJSON, order)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = ParseDataset([]byte(`{"": [[-40, -100, -55, -100, -100]]}`), FormatJSON, order)
	assert.Error(t, err)

	_, err = ParseDataset([]byte(`not json`), FormatJSON, order)
	assert.Error(t, err)

	_, err = ParseDataset([]byte(`{}`), Format("toml"), order)
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("data/fingerprints.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("fingerprints.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("datasets/wifi_fingerprints.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("no-extension"))
}
