package entities

import (
	"time"

	"nexora.io/application/utils"
)

type MediaType string

const (
	VideoMedia MediaType = "video"
	ImageMedia MediaType = "image"
)

type ScanVerdict string

const (
	VerdictDeepfake  ScanVerdict = "DEEPFAKE"
	VerdictReal      ScanVerdict = "REAL"
	VerdictUncertain ScanVerdict = "UNCERTAIN"
)

// ScanState tracks a scan through its lifecycle. COMPLETE is implied by the
// existence of a report row and is never written to the state registry.
type ScanState string

const (
	ScanPending    ScanState = "PENDING"
	ScanProcessing ScanState = "PROCESSING"
	ScanComplete   ScanState = "COMPLETE"
	ScanFailed     ScanState = "FAILED"
)

// FrameResult is the per-frame evidence captured during analysis. The slice on
// ScanReport is ordered by timestamp.
type FrameResult struct {
	Timestamp       float64 `bson:"timestamp" json:"timestamp"`
	AIProbability   float64 `bson:"ai_probability" json:"ai_probability"`
	FFTAnomalyScore float64 `bson:"fft_anomaly_score" json:"fft_anomaly_score"`
	Thumbnail       string  `bson:"thumbnail" json:"thumbnail"`
}

// ScanReport is the final, immutable record of one analysis run. It is written
// exactly once, when the pipeline completes.
type ScanReport struct {
	ScanID              string        `bson:"scan_id" json:"scan_id"`
	Verdict             ScanVerdict   `bson:"verdict" json:"verdict"`
	ConfidenceScore     float64       `bson:"confidence_score" json:"confidence_score"`
	TotalFramesAnalyzed int           `bson:"total_frames_analyzed" json:"total_frames_analyzed"`
	FrameData           []FrameResult `bson:"frame_data" json:"frame_data"`
	FileName            string        `bson:"file_name" json:"file_name"`
	HasThumbnails       bool          `bson:"has_thumbnails" json:"has_thumbnails"`
	MediaType           MediaType     `bson:"media_type" json:"media_type"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func (model ScanReport) ParseModel() any {
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
	}
	if model.ID == "" {
		model.ID = utils.GenerateULIDString()
	}
	if model.FrameData == nil {
		model.FrameData = []FrameResult{}
	}
	return &model
}
