package gallery

import (
	"image"
	"testing"

	"github.com/Kagami/go-face"
)

func TestIsImageFile(t *testing.T) {
	valid := []string{"anna.jpg", "bob.JPG", "carl.jpeg", "dan.JPEG", "eve.png", "fred.PNG"}
	for _, name := range valid {
		if !isImageFile(name) {
			t.Errorf("expected '%s' to be accepted", name)
		}
	}

	invalid := []string{"notes.txt", "clip.mp4", "face", "photo.jpg.bak", ".jpg.swp", "readme.md"}
	for _, name := range invalid {
		if isImageFile(name) {
			t.Errorf("expected '%s' to be rejected", name)
		}
	}
}

func TestResizeImage_SmallUnchanged(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 800, 600))

	out := resizeImage(img, maxImageSize)

	if out != image.Image(img) {
		t.Error("expected small image to be returned unchanged")
	}
}

func TestResizeImage_WideImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3200, 1600))

	out := resizeImage(img, maxImageSize)

	bounds := out.Bounds()
	if bounds.Dx() != 1600 {
		t.Errorf("expected width 1600, got %d", bounds.Dx())
	}

	if bounds.Dy() != 800 {
		t.Errorf("expected height 800, got %d", bounds.Dy())
	}
}

func TestResizeImage_TallImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1000, 4000))

	out := resizeImage(img, maxImageSize)

	bounds := out.Bounds()
	if bounds.Dy() != 1600 {
		t.Errorf("expected height 1600, got %d", bounds.Dy())
	}

	if bounds.Dx() != 400 {
		t.Errorf("expected width 400, got %d", bounds.Dx())
	}
}

func TestGallery_Descriptors(t *testing.T) {
	var d1, d2 face.Descriptor
	d1[0] = 1
	d2[0] = 2

	g := &Gallery{Entries: []Entry{
		{File: "a.jpg", Descriptor: d1},
		{File: "b.jpg", Descriptor: d2},
	}}

	descs := g.Descriptors()

	if len(descs) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(descs))
	}

	if descs[0][0] != 1 || descs[1][0] != 2 {
		t.Error("expected descriptors in entry order")
	}
}

func TestGallery_DescriptorsEmpty(t *testing.T) {
	g := &Gallery{}

	if len(g.Descriptors()) != 0 {
		t.Error("expected no descriptors for empty gallery")
	}
}
