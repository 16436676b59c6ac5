package screening

import "math"

// Cosine computes the cosine similarity between two vectors. It returns NaN
// when the vectors are incomparable (different lengths, empty, or zero norm)
// so the caller can apply the NaN-safe remap.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return math.NaN()
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return math.NaN()
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// CosineToUnit remaps a raw cosine from [-1,1] to [0,1]. NaN maps to 0.0 so
// a broken embedding never propagates downstream.
func CosineToUnit(score float64) float64 {
	if math.IsNaN(score) {
		return 0.0
	}
	return math.Max(0.0, math.Min(1.0, (score+1.0)/2.0))
}
