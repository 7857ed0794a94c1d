package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const MaxUploadImages = 10

var ErrTooManyImages = fmt.Errorf("at most %d images can be uploaded", MaxUploadImages)

// SaveUploadedImages stores the "images" files of a multipart request in dir
// and returns the stored file names. A request without files yields nil.
func SaveUploadedImages(c *gin.Context, dir string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	files := form.File["images"]
	if len(files) > MaxUploadImages {
		return nil, ErrTooManyImages
	}
	if len(files) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for _, fh := range files {
		name := imageFileName(fh, time.Now())
		if err := c.SaveUploadedFile(fh, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func imageFileName(fh *multipart.FileHeader, now time.Time) string {
	base := filepath.Base(fh.Filename)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s_%s", now.UTC().Format("20060102T150405.000000000"), base)
}
