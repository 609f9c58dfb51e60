package isoview

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot of the next drawn frame. The PNG
// is written to ScreenshotDir as <timestamp>_<label>.png.
func (v *Viewport) Screenshot(label string) {
	v.screenshotQueue = append(v.screenshotQueue, label)
}

// flushScreenshots saves frame once per queued label and empties the
// queue. Failures are reported on stderr; a failed capture is not retried.
func (v *Viewport) flushScreenshots(frame image.Image) {
	if len(v.screenshotQueue) == 0 {
		return
	}
	labels := v.screenshotQueue
	v.screenshotQueue = v.screenshotQueue[:0]

	if err := saveFrames(v.ScreenshotDir, time.Now(), labels, frame); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[isoview] screenshot: %v\n", err)
	}
}

// saveFrames writes frame to dir under one file name per label.
func saveFrames(dir string, at time.Time, labels []string, frame image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	prefix := at.Format("20060102_150405")
	var errs []error
	for _, label := range labels {
		name := prefix + "_" + sanitizeLabel(label) + ".png"
		errs = append(errs, encodePNGFile(filepath.Join(dir, name), frame))
	}
	return errors.Join(errs...)
}

func encodePNGFile(path string, frame image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, frame); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// readScreen copies the drawn frame out of the GPU image. The draw package
// converts ebiten's premultiplied colors to straight alpha.
func readScreen(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	frame := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(frame, frame.Bounds(), screen, b.Min, draw.Src)
	return frame
}

// sanitizeLabel keeps letters, digits, '-' and '.', turns everything else
// into '_' and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
