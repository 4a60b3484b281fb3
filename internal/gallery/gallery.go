// Package gallery loads the reference photos of known people and encodes
// them into face descriptors once at startup. The gallery is immutable for
// the rest of the run.
package gallery

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Kagami/go-face"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/draw"
)

// maxImageSize caps reference image dimensions before encoding; dlib gains
// nothing from larger inputs and slows down considerably.
const maxImageSize = 1600

// Entry is one successfully encoded reference photo.
type Entry struct {
	File       string
	Descriptor face.Descriptor
}

// Gallery holds the reference face descriptors in load order.
type Gallery struct {
	Entries []Entry

	// Skipped lists image files that contained no detectable face.
	Skipped []string
}

// Descriptors returns just the descriptor vectors, in entry order.
func (g *Gallery) Descriptors() []face.Descriptor {
	out := make([]face.Descriptor, len(g.Entries))
	for i, e := range g.Entries {
		out[i] = e.Descriptor
	}
	return out
}

// Load reads every image in dir and encodes the first face found in each.
// Files with unknown extensions or no detectable face are skipped. A missing
// directory is a startup error; an empty gallery is not.
func Load(rec *face.Recognizer, dir string) (*Gallery, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("gallery directory not found at %s: %w", dir, err)
	}

	var images []string
	for _, f := range files {
		if f.IsDir() || !isImageFile(f.Name()) {
			continue
		}
		images = append(images, filepath.Join(dir, f.Name()))
	}

	g := &Gallery{}
	if len(images) == 0 {
		return g, nil
	}

	bar := progressbar.NewOptions(len(images),
		progressbar.OptionSetDescription("Encoding reference faces"),
		progressbar.OptionShowCount(),
	)

	for _, path := range images {
		desc, found, err := encodeFile(rec, path)
		bar.Add(1)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", path, err)
		}
		if !found {
			g.Skipped = append(g.Skipped, path)
			continue
		}
		g.Entries = append(g.Entries, Entry{File: path, Descriptor: desc})
	}
	fmt.Println()

	return g, nil
}

// isImageFile filters gallery entries by extension, case-insensitively.
func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// encodeFile returns the descriptor of the first face in the image, or
// found=false when the recognizer sees no face in it.
func encodeFile(rec *face.Recognizer, path string) (face.Descriptor, bool, error) {
	var faces []face.Face
	var err error

	if strings.ToLower(filepath.Ext(path)) == ".png" {
		// dlib only accepts JPEG input, so PNG references are re-encoded.
		data, convErr := convertToJPEG(path)
		if convErr != nil {
			return face.Descriptor{}, false, convErr
		}
		faces, err = rec.Recognize(data)
	} else {
		faces, err = rec.RecognizeFile(path)
	}
	if err != nil {
		return face.Descriptor{}, false, err
	}

	if len(faces) == 0 {
		return face.Descriptor{}, false, nil
	}
	return faces[0].Descriptor, true, nil
}

// convertToJPEG decodes an image file, downscales it if oversized and
// re-encodes it as JPEG bytes for the recognizer.
func convertToJPEG(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	img = resizeImage(img, maxImageSize)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode failed: %w", err)
	}
	return buf.Bytes(), nil
}

// resizeImage scales an image down to fit within maxSize while maintaining
// aspect ratio. Images already small enough are returned unchanged.
func resizeImage(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var newWidth, newHeight int
	if width > height {
		if width <= maxSize {
			return img
		}
		newWidth = maxSize
		newHeight = height * maxSize / width
	} else {
		if height <= maxSize {
			return img
		}
		newHeight = maxSize
		newWidth = width * maxSize / height
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
