package media

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"feedbackportal/internal/model"
)

func writeTestImage(t *testing.T, name string, width, height int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	img := imaging.New(width, height, color.White)
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	return path
}

func TestPrepareImage_ReencodesAsJPEG(t *testing.T) {
	path := writeTestImage(t, "photo.png", 800, 600)

	upload, err := PrepareImage(path)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if upload.ContentType != "image/jpeg" {
		t.Errorf("content type = %q", upload.ContentType)
	}
	if upload.Name != "photo.jpg" {
		t.Errorf("name = %q, want photo.jpg", upload.Name)
	}

	decoded, err := imaging.Decode(bytes.NewReader(upload.Data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if decoded.Bounds().Dx() != 800 {
		t.Errorf("width = %d, want 800 untouched", decoded.Bounds().Dx())
	}
}

func TestPrepareImage_DownscalesWideImages(t *testing.T) {
	path := writeTestImage(t, "wide.png", 3200, 1000)

	upload, err := PrepareImage(path)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	decoded, err := imaging.Decode(bytes.NewReader(upload.Data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got := decoded.Bounds().Dx(); got != model.MaxPostImageWidth {
		t.Errorf("width = %d, want %d", got, model.MaxPostImageWidth)
	}
	// aspect ratio preserved: 3200x1000 -> 1600x500
	if got := decoded.Bounds().Dy(); got != 500 {
		t.Errorf("height = %d, want 500", got)
	}
}

func TestPrepareImage_RejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("just some text, no pixels"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := PrepareImage(path)
	if !errors.Is(err, model.ErrUnsupportedImage) {
		t.Fatalf("err = %v, want ErrUnsupportedImage", err)
	}
}

func TestPrepareImage_MissingFile(t *testing.T) {
	_, err := PrepareImage(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("expected error")
	}
}
