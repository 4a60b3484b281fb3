package audio

import (
	"time"

	"github.com/kozaktomas/door-sentry/internal/classify"
)

// Controller is the event state machine fed once per frame. It keeps the
// background track looping while nobody is at the door, fires a one-shot
// track when a visitor category holds long enough, and returns to the
// background once the one-shot finishes.
type Controller struct {
	player Player
	delays [classify.NumCategories]time.Duration
	now    func() time.Time

	started     bool
	last        classify.Category
	current     Track
	eventStart  time.Time
	eventPlayed bool
}

// NewController builds a controller around the given player. delays gates
// the one-shot per category; a nil clock defaults to time.Now.
func NewController(player Player, delays [classify.NumCategories]time.Duration, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		player:  player,
		delays:  delays,
		now:     now,
		current: TrackNone,
	}
}

// Current returns the track the controller last started.
func (c *Controller) Current() Track {
	return c.current
}

// Tick advances the state machine with the category observed this frame.
// The very first tick counts as a category change.
func (c *Controller) Tick(cat classify.Category) error {
	now := c.now()

	if !c.started || cat != c.last {
		c.started = true
		c.last = cat
		c.eventStart = now
		c.eventPlayed = false
		// Stop immediately so the channel is free for the new track.
		c.player.Stop()
		c.current = TrackNone
	}

	if cat == classify.NoPerson {
		if c.current != TrackBackground || !c.player.Busy() {
			if err := c.player.Play(TrackBackground, true); err != nil {
				return err
			}
			c.current = TrackBackground
		}
		return nil
	}

	if !c.eventPlayed && now.Sub(c.eventStart) >= c.delays[cat] {
		track := TrackForCategory(cat)
		if err := c.player.Play(track, false); err != nil {
			return err
		}
		c.current = track
		c.eventPlayed = true
	}

	// Once the one-shot finishes, resume the background loop. Resetting
	// eventStart restarts the delay cycle, so an unchanged category will
	// replay its one-shot after another delay period.
	if c.eventPlayed && !c.player.Busy() {
		if err := c.player.Play(TrackBackground, true); err != nil {
			return err
		}
		c.current = TrackBackground
		c.eventPlayed = false
		c.eventStart = now
	}

	return nil
}

// Stop halts whatever is playing. Used on shutdown.
func (c *Controller) Stop() {
	c.player.Stop()
	c.current = TrackNone
}
