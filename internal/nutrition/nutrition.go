package nutrition

import "math"

// GlycemicLoad computes the glycemic load for a serving from its glycemic
// index and net carbs (carbs minus fiber), rounded to the nearest integer.
func GlycemicLoad(gi, carbs, fiber int) int {
	netCarbs := carbs - fiber
	return int(math.Round(float64(gi*netCarbs) / 100))
}

// DangerousForDiabetes reports whether a food is considered risky for a
// diabetic patient: high glycemic index (>= 70) or high glycemic load (>= 20).
func DangerousForDiabetes(gi, gl int) bool {
	return gi >= 70 || gl >= 20
}
