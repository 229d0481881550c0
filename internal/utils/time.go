package utils

import (
	"math"
	"time"
)

// DaysUntil returns the number of whole days from now until t, rounded up.
func DaysUntil(t time.Time) int {
	return int(math.Ceil(time.Until(t).Hours() / 24))
}
