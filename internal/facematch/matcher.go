// Package facematch compares faces found in camera frames against a
// reference gallery of known people, using dlib descriptors via go-face.
package facematch

import (
	"fmt"
	"os"

	"github.com/Kagami/go-face"
)

// DefaultTolerance is the descriptor distance below which two faces are
// considered the same person. 0.6 is the standard dlib threshold.
const DefaultTolerance = 0.6

// Matcher owns the dlib recognizer and the reference descriptors.
type Matcher struct {
	rec       *face.Recognizer
	gallery   []face.Descriptor
	tolerance float64
}

// New initializes the recognizer from a directory holding the pretrained
// dlib model files. A missing directory is a startup error.
func New(modelDir string, tolerance float64) (*Matcher, error) {
	if _, err := os.Stat(modelDir); err != nil {
		return nil, fmt.Errorf("face model directory not found at %s: %w", modelDir, err)
	}

	rec, err := face.NewRecognizer(modelDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize face recognizer: %w", err)
	}

	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	return &Matcher{rec: rec, tolerance: tolerance}, nil
}

// Recognizer exposes the underlying recognizer for gallery loading.
func (m *Matcher) Recognizer() *face.Recognizer {
	return m.rec
}

// SetGallery installs the reference descriptors to match against.
func (m *Matcher) SetGallery(descriptors []face.Descriptor) {
	m.gallery = descriptors
}

// MatchKnownFace reports whether any face in the frame is within tolerance
// of any reference descriptor. An empty gallery never matches.
func (m *Matcher) MatchKnownFace(frameJPEG []byte) (bool, error) {
	if len(m.gallery) == 0 {
		return false, nil
	}

	faces, err := m.rec.Recognize(frameJPEG)
	if err != nil {
		return false, fmt.Errorf("face recognition failed: %w", err)
	}

	for _, f := range faces {
		if _, dist := BestMatch(m.gallery, f.Descriptor); dist <= m.tolerance {
			return true, nil
		}
	}
	return false, nil
}

// Close releases the dlib recognizer.
func (m *Matcher) Close() {
	m.rec.Close()
}
