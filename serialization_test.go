package xorindex

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	keys := randomKeys(2000)
	f, err := Build[uint16](keys)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Save(&buf))

	loaded, err := Load[uint16](&buf)
	require.NoError(t, err)

	assert.Equal(t, f.Seed(), loaded.Seed())
	assert.Equal(t, f.Size(), loaded.Size())
	assert.Equal(t, f.RawFingerprints(), loaded.RawFingerprints())
	assert.Equal(t, f.RawOriginTags(), loaded.RawOriginTags())

	for _, k := range keys {
		assert.True(t, loaded.Contains(k))
		assert.GreaterOrEqual(t, loaded.Index(k), 0)
	}
}

func TestSaveLoadWithoutOriginTags(t *testing.T) {
	keys := randomKeys(500)
	f, err := Build[uint8](keys, WithOriginTags(false))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Save(&buf))

	loaded, err := Load[uint8](&buf)
	require.NoError(t, err)

	assert.False(t, loaded.HasOriginTags())
	for _, k := range keys {
		assert.True(t, loaded.Contains(k))
	}
}
