package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", d.String())

	_, err = NewDateStringFromString("2024-5-1")
	assert.Error(t, err)

	_, err = NewDateStringFromString("01.05.2024")
	assert.Error(t, err)

	_, err = NewDateStringFromString("")
	assert.Error(t, err)
}

func TestDateString_Before(t *testing.T) {
	assert.True(t, DateString("2024-04-30").Before(DateString("2024-05-01")))
	assert.True(t, DateString("2024-12-31").Before(DateString("2025-01-01")))
	assert.False(t, DateString("2024-05-01").Before(DateString("2024-05-01")))
	assert.False(t, DateString("2024-05-02").Before(DateString("2024-05-01")))
}

func TestDateString_Scan(t *testing.T) {
	var d DateString

	// DATE колонка приходит как time.Time
	require.NoError(t, d.Scan(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, DateString("2024-05-01"), d)

	require.NoError(t, d.Scan("2024-06-15"))
	assert.Equal(t, DateString("2024-06-15"), d)

	assert.Error(t, d.Scan(42))
}

func TestNewDateString(t *testing.T) {
	d := NewDateString(time.Date(2024, 1, 5, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, DateString("2024-01-05"), d)
}
