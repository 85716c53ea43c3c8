package sampler

import (
	"math"

	"gocv.io/x/gocv"

	"nexora.io/entities"
	"nexora.io/infrastructure/logger"
)

// defaultInterval stands in when the container reports no usable frame rate;
// with the every-Nth-frame rule it keeps sampling near one frame per second.
const defaultInterval = 30

// FrameSource is a forward-only, non-restartable iterator over the frames of a
// media file selected for analysis. Video decodes sequentially and yields
// every Nth frame with N = round(FPS); an image yields a single frame at t=0.
// An unreadable source behaves as an already-exhausted iterator rather than an
// error, so degenerate handling stays downstream.
type FrameSource struct {
	capture   *gocv.VideoCapture
	frame     gocv.Mat
	timestamp float64
	fps       float64
	interval  int
	frameIdx  int
	imageMode bool
	exhausted bool
	started   bool
}

func Open(mediaPath string, mediaType entities.MediaType) *FrameSource {
	source := &FrameSource{frame: gocv.NewMat()}

	if mediaType == entities.ImageMedia {
		source.imageMode = true
		img := gocv.IMRead(mediaPath, gocv.IMReadColor)
		if img.Empty() {
			img.Close()
			logger.Warning("could not read image, yielding no frames", logger.LoggerOptions{
				Key:  "media_path",
				Data: mediaPath,
			})
			source.exhausted = true
			return source
		}
		source.frame.Close()
		source.frame = img
		return source
	}

	capture, err := gocv.OpenVideoCapture(mediaPath)
	if err != nil {
		logger.Warning("could not open video, yielding no frames", logger.LoggerOptions{
			Key:  "media_path",
			Data: mediaPath,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		source.exhausted = true
		return source
	}
	source.capture = capture
	source.fps = capture.Get(gocv.VideoCaptureFPS)
	source.interval = SampleInterval(source.fps)
	return source
}

// Next advances to the next sampled frame. It returns false once the source
// is exhausted or a decode fails; the iterator cannot be restarted.
func (fs *FrameSource) Next() bool {
	if fs.exhausted {
		return false
	}

	if fs.imageMode {
		if fs.started {
			fs.exhausted = true
			return false
		}
		fs.started = true
		fs.timestamp = 0
		return true
	}

	for fs.capture.Read(&fs.frame) {
		idx := fs.frameIdx
		fs.frameIdx++
		if idx%fs.interval != 0 || fs.frame.Empty() {
			continue
		}
		fs.timestamp = float64(idx) / fs.effectiveFPS()
		return true
	}

	fs.exhausted = true
	return false
}

// Frame returns the current frame. The mat is reused between calls to Next;
// callers that hand it to another goroutine must clone it.
func (fs *FrameSource) Frame() gocv.Mat {
	return fs.frame
}

func (fs *FrameSource) Timestamp() float64 {
	return fs.timestamp
}

func (fs *FrameSource) Close() {
	fs.exhausted = true
	fs.frame.Close()
	if fs.capture != nil {
		fs.capture.Close()
	}
}

func (fs *FrameSource) effectiveFPS() float64 {
	if fs.fps > 0 && !math.IsNaN(fs.fps) {
		return fs.fps
	}
	return defaultInterval
}

// SampleInterval converts a reported frame rate into the every-Nth-frame
// sampling step: round(fps), with unknown or zero rates falling back to the
// default and fractional rates clamped so every frame is considered.
func SampleInterval(fps float64) int {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return defaultInterval
	}
	interval := int(math.Round(fps))
	if interval < 1 {
		return 1
	}
	return interval
}
