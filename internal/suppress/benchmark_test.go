package suppress

import (
	"math/rand"
	"testing"

	"github.com/MeKo-Tech/sparsenms/internal/geometry"
)

// clusteredDetections simulates a detector output: boxes concentrated around
// cluster centers so that suppression has real work to do.
func clusteredDetections(rng *rand.Rand, n int) ([]geometry.Box, []float64) {
	const clusters = 32
	centers := make([][2]float64, clusters)
	for i := range centers {
		centers[i] = [2]float64{rng.Float64() * 2000, rng.Float64() * 2000}
	}

	boxes := make([]geometry.Box, n)
	scores := make([]float64, n)
	for i := range boxes {
		c := centers[rng.Intn(clusters)]
		x := c[0] + rng.NormFloat64()*10
		y := c[1] + rng.NormFloat64()*10
		w := 20 + rng.Float64()*20
		h := 20 + rng.Float64()*20
		boxes[i] = geometry.NewBox(x, y, x+w, y+h)
		scores[i] = rng.Float64()
	}
	return boxes, scores
}

func benchmarkSparse(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(7))
	boxes, scores := clusteredDetections(rng, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sparse(boxes, scores, 0.5, 0.0, buildRTree)
	}
}

func benchmarkNaive(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(7))
	boxes, scores := clusteredDetections(rng, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Naive(boxes, scores, 0.5, 0.0)
	}
}

func BenchmarkSparse1k(b *testing.B)  { benchmarkSparse(b, 1000) }
func BenchmarkSparse10k(b *testing.B) { benchmarkSparse(b, 10000) }
func BenchmarkNaive1k(b *testing.B)   { benchmarkNaive(b, 1000) }
func BenchmarkNaive10k(b *testing.B)  { benchmarkNaive(b, 10000) }
