package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "nexora.io/application/appErrors"
	"nexora.io/application/constants"
	"nexora.io/application/controller/dto"
	"nexora.io/application/interfaces"
	"nexora.io/application/repository"
	scan_usecases "nexora.io/application/usecases/scan"
	"nexora.io/application/utils"
	"nexora.io/entities"
	"nexora.io/infrastructure/logger"
	messagequeue "nexora.io/infrastructure/message_queue"
	queue_tasks "nexora.io/infrastructure/message_queue/tasks"
	mq_types "nexora.io/infrastructure/message_queue/types"
	server_response "nexora.io/infrastructure/serverResponse"
	"nexora.io/infrastructure/storage"
	"nexora.io/infrastructure/validator"
)

var mediaContentTypes = map[string]string{
	".mp4":  "video/mp4",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".bmp":  "image/bmp",
}

// SubmitScan accepts an upload, stores it and schedules the analysis
// pipeline. The response returns immediately with the scan id to poll.
func SubmitScan(ctx *interfaces.ApplicationContext[dto.SubmitScanDTO]) {
	valiedationErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body)
	if valiedationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, valiedationErr)
		return
	}

	extension := strings.ToLower(filepath.Ext(ctx.Body.FileName))
	if !constants.AllowedExtensions[extension] {
		apperrors.UnsupportedMediaError(ctx.Ctx,
			fmt.Sprintf("unsupported file type %s. supported types are mp4, avi, mov, mkv, jpg, jpeg, png, webp and bmp", extension))
		return
	}

	scanID := utils.GenerateScanID()
	if err := storage.Storage.CreateScanFolder(scanID); err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	storedPath, err := storage.Storage.SaveMedia(scanID, ctx.Body.File, extension)
	if err != nil {
		storage.Storage.DeleteScan(scanID)
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	mediaType := entities.ImageMedia
	if constants.VideoExtensions[extension] {
		mediaType = entities.VideoMedia
	}

	scan_usecases.SetScanState(scanID, entities.ScanPending)

	payload, err := json.Marshal(entities.MediaItem{
		ScanID:           scanID,
		MediaType:        mediaType,
		OriginalFileName: filepath.Base(ctx.Body.FileName),
		StoredPath:       storedPath,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Name:      queue_tasks.HandleMediaScanTaskName,
		Payload:   payload,
		Priority:  mq_types.High,
		ProcessIn: 1,
		TimeOut:   600,
		MaxRetry:  1,
	})

	logger.Info("scan submitted", logger.LoggerOptions{
		Key:  "scan_id",
		Data: scanID,
	}, logger.LoggerOptions{
		Key:  "media_type",
		Data: mediaType,
	})
	server_response.Responder.Respond(ctx.Ctx, http.StatusAccepted, "scan queued", map[string]any{
		"scan_id":    scanID,
		"status":     entities.ScanPending,
		"status_url": fmt.Sprintf("/api/v1/scans/%s", scanID),
	}, nil)
}

// GetScanReport returns the stored report for a finished scan or a lifecycle
// placeholder while the pipeline is still running.
func GetScanReport(ctx *interfaces.ApplicationContext[dto.FetchScanDTO]) {
	valiedationErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body)
	if valiedationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, valiedationErr)
		return
	}

	report, err := repository.ScanReportRepo().FindOneByFilter(map[string]interface{}{
		"scan_id": ctx.Body.ScanID,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if report != nil {
		server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "scan report retrieved", report, nil)
		return
	}

	state := scan_usecases.GetScanState(ctx.Body.ScanID)
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "scan in progress", map[string]any{
		"scan_id": ctx.Body.ScanID,
		"status":  state,
	}, nil)
}

// ListScans returns the most recent reports, newest first.
func ListScans(ctx *interfaces.ApplicationContext[any]) {
	limit := int64(constants.ScanListLimit)
	reports, err := repository.ScanReportRepo().FindMany(map[string]interface{}{}, &options.FindOptions{
		Limit: &limit,
		Sort:  bson.M{"created_at": -1},
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "scans retrieved", reports, nil)
}

// GetScanMedia streams the originally uploaded file back to the caller.
func GetScanMedia(ctx *interfaces.ApplicationContext[dto.FetchScanDTO]) {
	valiedationErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body)
	if valiedationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, valiedationErr)
		return
	}

	mediaPath, found := storage.Storage.MediaPath(ctx.Body.ScanID)
	if !found {
		apperrors.NotFoundError(ctx.Ctx, "media not found for this scan")
		return
	}

	ginCtx, ok := ctx.Ctx.(*gin.Context)
	if !ok {
		apperrors.FatalServerError(ctx.Ctx, fmt.Errorf("unsupported transport context"))
		return
	}
	if contentType, known := mediaContentTypes[strings.ToLower(filepath.Ext(mediaPath))]; known {
		ginCtx.Header("Content-Type", contentType)
	}
	ginCtx.File(mediaPath)
}

// GetScanThumbnail serves a retained evidence image from a scan folder.
func GetScanThumbnail(ctx *interfaces.ApplicationContext[dto.FetchThumbnailDTO]) {
	valiedationErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body)
	if valiedationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, valiedationErr)
		return
	}

	thumbPath, found := storage.Storage.ThumbnailPath(ctx.Body.ScanID, ctx.Body.FileName)
	if !found {
		apperrors.NotFoundError(ctx.Ctx, "thumbnail not found for this scan")
		return
	}

	ginCtx, ok := ctx.Ctx.(*gin.Context)
	if !ok {
		apperrors.FatalServerError(ctx.Ctx, fmt.Errorf("unsupported transport context"))
		return
	}
	ginCtx.Header("Content-Type", "image/jpeg")
	ginCtx.File(thumbPath)
}
