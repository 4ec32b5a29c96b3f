package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-06-01", FormatDate(d))

	_, err = ParseDate("01.06.2024")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), DateOf(ts))
}
