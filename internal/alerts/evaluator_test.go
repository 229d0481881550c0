package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		value int
		high  int
		low   int
		want  Classification
	}{
		{"normal mid-range", 120, 180, 70, None},
		{"clearly high", 250, 180, 70, High},
		{"clearly low", 45, 180, 70, Low},
		{"exactly high threshold", 180, 180, 70, High},
		{"exactly low threshold", 70, 180, 70, Low},
		{"one above low threshold", 71, 180, 70, None},
		{"one below high threshold", 179, 180, 70, None},
		{"max measurable value", 600, 180, 70, High},
		{"min measurable value", 20, 180, 70, Low},
		{"custom tight thresholds", 130, 140, 90, None},
		{"custom tight thresholds high", 140, 140, 90, High},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.value, tt.high, tt.low))
		})
	}
}

func TestEvaluateHighWinsOnOverlap(t *testing.T) {
	// Thresholds are not forced into low < high. When ranges overlap, the
	// high comparison runs first and wins.
	assert.Equal(t, High, Evaluate(150, 100, 200))
	assert.Equal(t, High, Evaluate(100, 100, 100))
	assert.Equal(t, Low, Evaluate(90, 100, 200))
}

func TestEvaluateEveryMeasurableValue(t *testing.T) {
	// Each value in the measurable range gets exactly one classification and
	// the regions are contiguous.
	const high, low = 180, 70
	for v := 20; v <= 600; v++ {
		got := Evaluate(v, high, low)
		switch {
		case v >= high:
			assert.Equal(t, High, got, "value %d", v)
		case v <= low:
			assert.Equal(t, Low, got, "value %d", v)
		default:
			assert.Equal(t, None, got, "value %d", v)
		}
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, Evaluate(185, 180, 70), Evaluate(185, 180, 70))
	}
}
