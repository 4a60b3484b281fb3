package facematch

import (
	"math"
	"testing"

	"github.com/Kagami/go-face"
)

func descriptorWith(val float32, indexes ...int) face.Descriptor {
	var d face.Descriptor
	for _, i := range indexes {
		d[i] = val
	}
	return d
}

func TestEuclideanDistance_Identical(t *testing.T) {
	a := descriptorWith(0.5, 0, 10, 127)

	if dist := EuclideanDistance(a, a); dist != 0 {
		t.Errorf("expected zero distance for identical descriptors, got %f", dist)
	}
}

func TestEuclideanDistance_Symmetric(t *testing.T) {
	a := descriptorWith(1.0, 0)
	b := descriptorWith(1.0, 1)

	if EuclideanDistance(a, b) != EuclideanDistance(b, a) {
		t.Error("expected distance to be symmetric")
	}
}

func TestEuclideanDistance_KnownValue(t *testing.T) {
	// a and b differ by 3 in one dimension and 4 in another
	var a, b face.Descriptor
	a[0] = 3
	b[1] = 4

	dist := EuclideanDistance(a, b)

	if math.Abs(dist-5.0) > 1e-9 {
		t.Errorf("expected distance 5.0, got %f", dist)
	}
}

func TestEuclideanDistance_ZeroDescriptors(t *testing.T) {
	var a, b face.Descriptor

	if dist := EuclideanDistance(a, b); dist != 0 {
		t.Errorf("expected zero distance for zero descriptors, got %f", dist)
	}
}

func TestBestMatch_FindsClosest(t *testing.T) {
	gallery := []face.Descriptor{
		descriptorWith(10, 0),
		descriptorWith(1, 0),
		descriptorWith(5, 0),
	}
	probe := descriptorWith(1.2, 0)

	idx, dist := BestMatch(gallery, probe)

	if idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}

	if math.Abs(dist-0.2) > 1e-6 {
		t.Errorf("expected distance 0.2, got %f", dist)
	}
}

func TestBestMatch_EmptyGallery(t *testing.T) {
	probe := descriptorWith(1, 0)

	idx, dist := BestMatch(nil, probe)

	if idx != -1 {
		t.Errorf("expected index -1 for empty gallery, got %d", idx)
	}

	if !math.IsInf(dist, 1) {
		t.Errorf("expected infinite distance for empty gallery, got %f", dist)
	}
}

func TestBestMatch_ExactMember(t *testing.T) {
	gallery := []face.Descriptor{
		descriptorWith(3, 2),
		descriptorWith(7, 4),
	}

	idx, dist := BestMatch(gallery, gallery[1])

	if idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}

	if dist != 0 {
		t.Errorf("expected zero distance for exact member, got %f", dist)
	}
}
