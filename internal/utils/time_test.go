package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 1, DaysUntil(time.Now().Add(2*time.Hour)))
	assert.Equal(t, 2, DaysUntil(time.Now().Add(36*time.Hour)))
	assert.Equal(t, 0, DaysUntil(time.Now().Add(-time.Minute)))
	assert.Equal(t, -1, DaysUntil(time.Now().Add(-30*time.Hour)))
}
