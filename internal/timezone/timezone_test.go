package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBack(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Nowhere/City").String())
	assert.False(t, IsValid(""))
}

func TestParseDateUsesConfiguredZone(t *testing.T) {
	Set("UTC")
	t.Cleanup(func() { Set(DefaultTimezone) })

	d, err := ParseDate("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("19/10/2026")
	assert.Error(t, err)
}
