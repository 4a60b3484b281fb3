// Package classify turns a frame's detections and face-match result into a
// single visitor category.
package classify

import "fmt"

// Category is the per-frame classification of whoever is at the door.
type Category int

const (
	// NoPerson means no "person" detection is present in the frame.
	NoPerson Category = iota
	// Friend means a detected face matched the reference gallery.
	Friend
	// Delivery means an unidentified person carrying a delivery cue.
	Delivery
	// Thief is the fallback for an unidentified person with no cues.
	Thief

	numCategories
)

// NumCategories sizes category-indexed lookup tables (delays, colors,
// tracks) so that the compiler catches a missing entry.
const NumCategories = int(numCategories)

var categoryNames = [NumCategories]string{
	NoPerson: "noperson",
	Friend:   "friend",
	Delivery: "delivery",
	Thief:    "thief",
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}
