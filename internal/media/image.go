package media

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"feedbackportal/internal/model"
)

const jpegQuality = 85

// PrepareImage loads an attachment from disk and normalizes it for the
// multipart upload: size and type checks, downscale to the maximum post
// width, JPEG re-encode.
func PrepareImage(path string) (*model.ImageUpload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > model.MaxPostImageSize {
		return nil, model.ErrImageTooLarge
	}

	contentType := http.DetectContentType(data[:min(len(data), 512)])
	if !strings.HasPrefix(contentType, "image/") {
		return nil, model.ErrUnsupportedImage
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if img.Bounds().Dx() > model.MaxPostImageWidth {
		img = imaging.Resize(img, model.MaxPostImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".jpg"
	return &model.ImageUpload{
		Name:        name,
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}, nil
}
