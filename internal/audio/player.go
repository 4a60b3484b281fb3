// Package audio owns sound playback: a Player abstraction over the speaker
// and the event controller that decides which track plays as the visitor
// category changes.
package audio

import (
	"fmt"

	"github.com/kozaktomas/door-sentry/internal/classify"
)

// Track identifies a logical sound asset.
type Track int

const (
	TrackNone Track = iota
	TrackBackground
	TrackFriend
	TrackDelivery
	TrackThief

	numTracks
)

// NumTracks sizes track-indexed lookup tables.
const NumTracks = int(numTracks)

var trackNames = [NumTracks]string{
	TrackNone:       "none",
	TrackBackground: "background",
	TrackFriend:     "friend",
	TrackDelivery:   "delivery",
	TrackThief:      "thief",
}

func (t Track) String() string {
	if t < 0 || t >= numTracks {
		return fmt.Sprintf("Track(%d)", int(t))
	}
	return trackNames[t]
}

// trackForCategory maps a visitor category to its one-shot track. NoPerson
// maps to the looping background.
var trackForCategory = [classify.NumCategories]Track{
	classify.NoPerson: TrackBackground,
	classify.Friend:   TrackFriend,
	classify.Delivery: TrackDelivery,
	classify.Thief:    TrackThief,
}

// TrackForCategory returns the track that announces the given category.
func TrackForCategory(cat classify.Category) Track {
	return trackForCategory[cat]
}

// Player plays at most one track at a time. Play always stops whatever is
// currently playing before starting the new track.
type Player interface {
	Play(t Track, loop bool) error

	// Stop halts playback immediately and frees the output channel.
	Stop()

	// Busy reports whether a track is still playing. A looping track
	// stays busy until explicitly stopped.
	Busy() bool

	Close() error
}
