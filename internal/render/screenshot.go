package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// SaveScreenshot writes the most recently composed frame as a PNG into dir,
// creating the directory if needed, and returns the file path. Must be
// called from within the game loop; the frame pixels are not readable
// before it starts.
func (r *Renderer) SaveScreenshot(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	r.frame.ReadPixels(img.Pix)

	path := filepath.Join(dir, screenshotName(time.Now()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	return path, nil
}

// screenshotName builds the result_YYYYMMDD_HHMMSS.png filename.
func screenshotName(ts time.Time) string {
	return fmt.Sprintf("result_%s.png", ts.Format("20060102_150405"))
}
