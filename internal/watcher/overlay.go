package watcher

import (
	"image"
	"image/color"
	"time"

	"gocv.io/x/gocv"

	"github.com/kozaktomas/door-sentry/internal/classify"
)

// blinkPeriod is how long the thief warning stays visible (and then hidden)
// within its blink cycle.
const blinkPeriod = 500 * time.Millisecond

var overlayColors = [classify.NumCategories]color.RGBA{
	classify.NoPerson: {R: 255, G: 255, B: 255},
	classify.Friend:   {G: 255},
	classify.Delivery: {R: 255, G: 255},
	classify.Thief:    {R: 255},
}

// drawOverlay writes the category label into the top-left corner of the
// frame. The thief label blinks to draw attention.
func drawOverlay(frame *gocv.Mat, cat classify.Category, now time.Time) {
	if cat == classify.Thief && !blinkOn(now) {
		return
	}
	gocv.PutText(frame, overlayText(cat), image.Pt(10, 30), gocv.FontHersheySimplex, 1.0, overlayColors[cat], 2)
}

func overlayText(cat classify.Category) string {
	if cat == classify.NoPerson {
		return "No person detected"
	}
	return "Visitor: " + cat.String()
}

func blinkOn(now time.Time) bool {
	return (now.UnixMilli()/blinkPeriod.Milliseconds())%2 == 0
}
