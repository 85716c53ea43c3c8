package constants

// Extensions accepted by the submit endpoint. Everything else is rejected
// before a scan folder is ever created.
var AllowedExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".bmp":  true,
}

var VideoExtensions = map[string]bool{
	".mp4": true,
	".avi": true,
	".mov": true,
	".mkv": true,
}

// Verdict blending. The AI classifier carries 70% of the confidence score, the
// frequency-domain heuristic 30% after its native ~0-100 range is rescaled to a
// fraction. A blended score above the threshold means DEEPFAKE.
const (
	AISignalWeight    = 0.7
	FFTSignalWeight   = 0.3
	DeepfakeThreshold = 50.0
	MaxConfidence     = 99.9
)

// ThumbnailMaxWidth caps evidence thumbnails; aspect ratio is preserved.
const ThumbnailMaxWidth = 400

// ScanListLimit bounds the page size of the scan listing endpoint.
const ScanListLimit = 100

// FacePaddingRatio expands a detected bounding box on each side to keep chin
// and forehead blending artifacts inside the crop.
const FacePaddingRatio = 0.2

// FrameWorkers bounds per-frame analysis concurrency inside one scan. Decoding
// stays sequential; only detection and feature extraction fan out.
const FrameWorkers = 4
