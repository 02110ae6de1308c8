package formatting

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDateTime(t *testing.T) {
	tests := map[string]struct {
		in   any
		want time.Time
	}{
		"date":            {"2024-01-31", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		"local date time": {"2024-01-31T15:04:05", time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC)},
		"minutes only":    {"2024-01-31T15:04", time.Date(2024, 1, 31, 15, 4, 0, 0, time.UTC)},
		"time.Time":       {fixedNow, fixedNow},
		"serial":          {45322.75, time.Date(2024, 1, 31, 18, 0, 0, 0, time.UTC)},
		"json number":     {json.Number("45322"), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := toDateTime(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}

	_, err := toDateTime(nil)
	assert.Error(t, err)
}

func TestToNumber(t *testing.T) {
	n, err := toNumber(" 42.5 ")
	require.NoError(t, err)
	assert.Equal(t, 42.5, n)

	n, err = toNumber(7)
	require.NoError(t, err)
	assert.Equal(t, 7.0, n)

	_, err = toNumber([]int{1})
	assert.EqualError(t, err, "cannot convert []int to number")
}

func TestToText(t *testing.T) {
	assert.Equal(t, "", toText(nil))
	assert.Equal(t, "0.1", toText(0.1))
	assert.Equal(t, "2024-01-31T15:04:05", toText(fixedNow))
	assert.Equal(t, "[1 2]", toText([]int{1, 2}))
}
