package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	var ts Timestamp

	require.NoError(t, json.Unmarshal([]byte(`"2026-03-01T12:30:00Z"`), &ts))
	require.NotNil(t, ts.Ptr())
	assert.Equal(t, time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC), ts.Ptr().UTC())

	require.NoError(t, json.Unmarshal([]byte(`"2026-03-01"`), &ts))
	require.NotNil(t, ts.Ptr())
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *ts.Ptr())

	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.Nil(t, ts.Ptr())

	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.Nil(t, ts.Ptr())

	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &ts))
}
