package scan_usecases

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"gocv.io/x/gocv"

	"nexora.io/application/constants"
	"nexora.io/application/repository"
	"nexora.io/entities"
	"nexora.io/infrastructure/detection/face"
	"nexora.io/infrastructure/detection/inference"
	"nexora.io/infrastructure/detection/sampler"
	"nexora.io/infrastructure/detection/spectral"
	"nexora.io/infrastructure/logger"
	"nexora.io/infrastructure/reports"
	"nexora.io/infrastructure/storage"
)

// ProcessMediaScan runs the full analysis pipeline for one submitted media
// item: sample frames, locate faces, extract both signals, aggregate, persist
// the report. It never returns an error to its dispatcher; every failure mode
// ends in either a best-effort report or a FAILED state entry.
func ProcessMediaScan(media entities.MediaItem) {
	scanID := media.ScanID
	logger.Info("scan processing started", logger.LoggerOptions{
		Key:  "scan_id",
		Data: scanID,
	}, logger.LoggerOptions{
		Key:  "media_type",
		Data: media.MediaType,
	})
	SetScanState(scanID, entities.ScanProcessing)
	defer storage.Storage.CleanupProcessed(scanID)

	aggregator := NewAggregator()
	source := sampler.Open(media.StoredPath, media.MediaType)
	defer source.Close()

	var wg sync.WaitGroup
	workers := make(chan struct{}, constants.FrameWorkers)
	frameIdx := 0
	for source.Next() {
		frame := source.Frame().Clone()
		timestamp := source.Timestamp()
		idx := frameIdx
		frameIdx++

		wg.Add(1)
		workers <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-workers }()
			defer frame.Close()
			defer func() {
				if r := recover(); r != nil {
					logger.Error("frame analysis panicked, skipping frame", logger.LoggerOptions{
						Key:  "scan_id",
						Data: scanID,
					}, logger.LoggerOptions{
						Key:  "panic",
						Data: r,
					})
				}
			}()
			analyseFrame(scanID, idx, timestamp, frame, aggregator)
		}()
	}
	wg.Wait()

	verdict, confidence, frameData := aggregator.Finalize()
	hasThumbnails := false
	for _, result := range frameData {
		if result.Thumbnail != "" {
			hasThumbnails = true
			break
		}
	}

	report := entities.ScanReport{
		ScanID:              scanID,
		Verdict:             verdict,
		ConfidenceScore:     confidence,
		TotalFramesAnalyzed: len(frameData),
		FrameData:           frameData,
		FileName:            media.OriginalFileName,
		HasThumbnails:       hasThumbnails,
		MediaType:           media.MediaType,
	}

	saved, err := repository.ScanReportRepo().CreateOne(context.Background(), report)
	if err != nil {
		logger.Error("failed to persist scan report", logger.LoggerOptions{
			Key:  "scan_id",
			Data: scanID,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		SetScanState(scanID, entities.ScanFailed)
		return
	}
	SetScanState(scanID, entities.ScanComplete)

	// PDF rendering stays off the hot path; a render failure never touches
	// the stored report.
	go reports.RenderScanReport(storage.Storage.ScanDir(scanID), *saved)

	logger.Info("scan processing completed", logger.LoggerOptions{
		Key:  "scan_id",
		Data: scanID,
	}, logger.LoggerOptions{
		Key:  "verdict",
		Data: verdict,
	}, logger.LoggerOptions{
		Key:  "confidence_score",
		Data: confidence,
	}, logger.LoggerOptions{
		Key:  "frames_analyzed",
		Data: len(frameData),
	})
}

// analyseFrame extracts both signals for a single frame and records the
// result. The face crop is written to the scan's processed workspace only for
// the duration of extraction; the retained artifact is the thumbnail.
func analyseFrame(scanID string, idx int, timestamp float64, frame gocv.Mat, aggregator *Aggregator) {
	crop, found := face.Locator.Locate(frame)
	defer crop.Close()

	analysis := frame
	if found {
		analysis = crop
	}

	cropPath := filepath.Join(storage.Storage.ProcessedDir(scanID), fmt.Sprintf("face_%06d.jpg", idx))
	gocv.IMWrite(cropPath, analysis)
	defer os.Remove(cropPath)

	aiProbability, degraded := inference.Service.Predict(analysis)
	if degraded {
		logger.Warning("frame scored in degraded mode", logger.LoggerOptions{
			Key:  "scan_id",
			Data: scanID,
		}, logger.LoggerOptions{
			Key:  "frame_index",
			Data: idx,
		})
	}
	fftScore := spectral.AnomalyScore(analysis)

	thumbnail := fmt.Sprintf("frame_%06d.jpg", idx)
	if !writeThumbnail(filepath.Join(storage.Storage.ThumbnailsDir(scanID), thumbnail), analysis) {
		thumbnail = ""
	}

	aggregator.Record(entities.FrameResult{
		Timestamp:       timestamp,
		AIProbability:   aiProbability,
		FFTAnomalyScore: fftScore,
		Thumbnail:       thumbnail,
	})
}

// writeThumbnail stores a bounded evidence image, capped at the configured
// width with aspect ratio preserved.
func writeThumbnail(path string, img gocv.Mat) bool {
	if img.Empty() {
		return false
	}
	if img.Cols() <= constants.ThumbnailMaxWidth {
		return gocv.IMWrite(path, img)
	}

	scale := float64(constants.ThumbnailMaxWidth) / float64(img.Cols())
	height := int(float64(img.Rows()) * scale)
	if height < 1 {
		height = 1
	}
	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(img, &resized, image.Pt(constants.ThumbnailMaxWidth, height), 0, 0, gocv.InterpolationArea)
	return gocv.IMWrite(path, resized)
}
