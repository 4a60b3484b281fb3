package classify

import (
	"fmt"

	"github.com/kozaktomas/door-sentry/internal/detect"
)

// personLabel is the detection class that gates all further classification.
const personLabel = "person"

// deliveryCues are detection labels treated as a heuristic proxy for a
// delivery worker when no face match is available.
var deliveryCues = map[string]struct{}{
	"handbag":  {},
	"backpack": {},
	"helmet":   {},
	"suit":     {},
	"hat":      {},
}

// IsDeliveryCue reports whether a detection label counts as a delivery cue.
func IsDeliveryCue(label string) bool {
	_, ok := deliveryCues[label]
	return ok
}

// Matcher reports whether a frame contains a face known to the reference
// gallery. The frame is passed as encoded JPEG bytes.
type Matcher interface {
	MatchKnownFace(frameJPEG []byte) (bool, error)
}

// Classifier combines object detections and face matching into a Category.
type Classifier struct {
	matcher Matcher
}

func NewClassifier(matcher Matcher) *Classifier {
	return &Classifier{matcher: matcher}
}

// Classify returns exactly one category for the frame, in strict priority
// order: no person beats everything, a gallery face match beats delivery
// cues, delivery cues beat the thief fallback. The face matcher is only
// invoked when a person is present.
func (c *Classifier) Classify(frameJPEG []byte, dets []detect.Detection) (Category, error) {
	if !detect.HasLabel(dets, personLabel) {
		return NoPerson, nil
	}

	matched, err := c.matcher.MatchKnownFace(frameJPEG)
	if err != nil {
		return NoPerson, fmt.Errorf("face match failed: %w", err)
	}
	if matched {
		return Friend, nil
	}

	for _, d := range dets {
		if IsDeliveryCue(d.Label) {
			return Delivery, nil
		}
	}

	return Thief, nil
}
