// Package watcher runs the main camera loop: grab a frame, detect objects,
// classify the visitor, draw the overlay and feed the audio controller.
package watcher

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/kozaktomas/door-sentry/internal/audio"
	"github.com/kozaktomas/door-sentry/internal/classify"
	"github.com/kozaktomas/door-sentry/internal/detect"
)

// quitKey ends the loop when pressed in the preview window (ESC).
const quitKey = 27

// FrameSource yields camera frames. *gocv.VideoCapture satisfies it.
type FrameSource interface {
	Read(m *gocv.Mat) bool
	Close() error
}

// Display shows annotated frames and collects key presses.
// *gocv.Window satisfies it.
type Display interface {
	IMShow(m gocv.Mat)
	WaitKey(delay int) int
	Close() error
}

// Watcher ties the pipeline together and owns the per-frame loop.
type Watcher struct {
	source     FrameSource
	display    Display
	detector   detect.Detector
	classifier *classify.Classifier
	controller *audio.Controller
	now        func() time.Time

	started bool
	last    classify.Category
}

// New builds a watcher. A nil clock defaults to time.Now.
func New(
	source FrameSource,
	display Display,
	detector detect.Detector,
	classifier *classify.Classifier,
	controller *audio.Controller,
	now func() time.Time,
) *Watcher {
	if now == nil {
		now = time.Now
	}
	return &Watcher{
		source:     source,
		display:    display,
		detector:   detector,
		classifier: classifier,
		controller: controller,
		now:        now,
	}
}

// Run loops until the camera stream ends or the quit key is pressed.
// The end of the stream is a normal shutdown, not an error.
func (w *Watcher) Run() error {
	defer w.controller.Stop()

	frame := gocv.NewMat()
	defer frame.Close()

	for {
		if ok := w.source.Read(&frame); !ok {
			log.Printf("camera stream ended, shutting down")
			return nil
		}
		if frame.Empty() {
			continue
		}

		dets, err := w.detector.Detect(frame)
		if err != nil {
			return fmt.Errorf("object detection failed: %w", err)
		}

		cat, err := w.classifyFrame(frame, dets)
		if err != nil {
			return err
		}

		w.observe(cat, dets)

		drawOverlay(&frame, cat, w.now())
		w.display.IMShow(frame)

		if err := w.controller.Tick(cat); err != nil {
			return fmt.Errorf("audio playback failed: %w", err)
		}

		if w.display.WaitKey(1) == quitKey {
			log.Printf("quit key pressed, shutting down")
			return nil
		}
	}
}

// classifyFrame hands the frame to the classifier as JPEG bytes, the format
// the face recognizer consumes.
func (w *Watcher) classifyFrame(frame gocv.Mat, dets []detect.Detection) (classify.Category, error) {
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, frame)
	if err != nil {
		return classify.NoPerson, fmt.Errorf("failed to encode frame: %w", err)
	}
	defer buf.Close()

	cat, err := w.classifier.Classify(buf.GetBytes(), dets)
	if err != nil {
		return classify.NoPerson, fmt.Errorf("failed to classify visitor: %w", err)
	}
	return cat, nil
}

// observe logs category transitions. Each transition gets an event id so
// lines belonging to one visit can be correlated.
func (w *Watcher) observe(cat classify.Category, dets []detect.Detection) {
	if w.started && cat == w.last {
		return
	}
	w.started = true
	w.last = cat
	log.Printf("event %s: category changed to %s, objects: %v", uuid.NewString(), cat, detect.Labels(dets))
}
