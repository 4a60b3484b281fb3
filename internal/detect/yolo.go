package detect

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"
)

const yoloInputSize = 416

// YOLO runs a darknet-style YOLO model through OpenCV's DNN module.
type YOLO struct {
	net        gocv.Net
	classNames []string
	confidence float32
}

// NewYOLO loads the model weights and network config from disk.
// A missing weights file is a startup error.
func NewYOLO(weightsPath, configPath string, confidence float64) (*YOLO, error) {
	if _, err := os.Stat(weightsPath); err != nil {
		return nil, fmt.Errorf("detection model weights not found at %s: %w", weightsPath, err)
	}
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("detection model config not found at %s: %w", configPath, err)
	}

	net := gocv.ReadNet(weightsPath, configPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load detection model from %s", weightsPath)
	}
	net.SetPreferableBackend(gocv.NetBackendDefault)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &YOLO{
		net:        net,
		classNames: ClassNames(),
		confidence: float32(confidence),
	}, nil
}

// Detect runs one forward pass and returns all detections above the
// confidence threshold, with boxes scaled back to frame coordinates.
func (y *YOLO) Detect(frame gocv.Mat) ([]Detection, error) {
	if frame.Empty() {
		return nil, fmt.Errorf("cannot detect on an empty frame")
	}

	blob := gocv.BlobFromImage(frame, 1.0/255.0,
		image.Pt(yoloInputSize, yoloInputSize),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	y.net.SetInput(blob, "")
	output := y.net.Forward("")
	defer output.Close()

	return y.parseOutput(output, frame.Cols(), frame.Rows()), nil
}

// parseOutput walks the raw output rows. Each row is
// [centerX centerY width height objectness score0 ... score79] with
// coordinates normalized to the input blob.
func (y *YOLO) parseOutput(output gocv.Mat, frameWidth, frameHeight int) []Detection {
	var dets []Detection

	for i := 0; i < output.Rows(); i++ {
		row := output.RowRange(i, i+1)
		scores := row.ColRange(5, row.Cols())
		_, confidence, _, classLoc := gocv.MinMaxLoc(scores)
		classID := classLoc.X
		scores.Close()

		if confidence < y.confidence || classID >= len(y.classNames) {
			row.Close()
			continue
		}

		centerX := row.GetFloatAt(0, 0) * float32(frameWidth)
		centerY := row.GetFloatAt(0, 1) * float32(frameHeight)
		width := row.GetFloatAt(0, 2) * float32(frameWidth)
		height := row.GetFloatAt(0, 3) * float32(frameHeight)
		row.Close()

		left := int(centerX - width/2)
		top := int(centerY - height/2)

		dets = append(dets, Detection{
			Label:      y.classNames[classID],
			Confidence: confidence,
			Box:        image.Rect(left, top, left+int(width), top+int(height)),
		})
	}

	return dets
}

// Close releases the underlying network.
func (y *YOLO) Close() error {
	return y.net.Close()
}
