// Package detect runs object detection on camera frames and exposes the
// results as labeled bounding boxes. Detection is delegated entirely to a
// pretrained model loaded through OpenCV's DNN module.
package detect

import (
	"image"
	"strings"

	_ "embed"

	"gocv.io/x/gocv"
)

//go:embed coco.names
var cocoNames string

// Detection is one labeled bounding box produced for a single frame.
type Detection struct {
	Label      string
	Confidence float32
	Box        image.Rectangle
}

// Detector analyzes a video frame and returns the objects found in it.
type Detector interface {
	Detect(frame gocv.Mat) ([]Detection, error)

	// Close releases any resources held by the detector.
	Close() error
}

// ClassNames returns the COCO class list the bundled models are trained on.
func ClassNames() []string {
	lines := strings.Split(strings.TrimSpace(cocoNames), "\n")
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		if name := strings.TrimSpace(l); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Labels extracts just the class labels from a detection set.
func Labels(dets []Detection) []string {
	labels := make([]string, len(dets))
	for i, d := range dets {
		labels[i] = d.Label
	}
	return labels
}

// HasLabel reports whether any detection carries the given class label.
func HasLabel(dets []Detection, label string) bool {
	for _, d := range dets {
		if d.Label == label {
			return true
		}
	}
	return false
}
