package facematch

import (
	"math"

	"github.com/Kagami/go-face"
)

// EuclideanDistance computes the euclidean distance between two face
// descriptors. dlib descriptors of the same person are typically closer
// than 0.6, different people further apart.
func EuclideanDistance(a, b face.Descriptor) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// BestMatch returns the index of the gallery descriptor closest to the
// probe and its distance. Returns -1 for an empty gallery.
func BestMatch(gallery []face.Descriptor, probe face.Descriptor) (int, float64) {
	best := -1
	bestDist := math.MaxFloat64

	for i := range gallery {
		if d := EuclideanDistance(gallery[i], probe); d < bestDist {
			bestDist = d
			best = i
		}
	}

	if best == -1 {
		return -1, math.Inf(1)
	}
	return best, bestDist
}
