package alerts

// Classification is the outcome of comparing a glucose reading against a
// user's configured thresholds.
type Classification string

const (
	None Classification = "none"
	High Classification = "high"
	Low  Classification = "low"
)

// Evaluate classifies a glucose value (mg/dL) against high/low thresholds.
// Both boundaries are inclusive: a value equal to the high threshold is high,
// a value equal to the low threshold is low. High wins when thresholds are
// misconfigured to overlap.
func Evaluate(value, high, low int) Classification {
	if value >= high {
		return High
	}
	if value <= low {
		return Low
	}
	return None
}
