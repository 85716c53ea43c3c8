package queue_tasks

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	scan_usecases "nexora.io/application/usecases/scan"
	"nexora.io/entities"
	"nexora.io/infrastructure/logger"
	mq_types "nexora.io/infrastructure/message_queue/types"
)

var HandleMediaScanTaskName mq_types.Queues = "media:scan"

func HandleMediaScanTask(ctx context.Context, t *asynq.Task) error {
	var media entities.MediaItem
	err := json.Unmarshal(t.Payload(), &media)
	if err != nil {
		logger.Error("an error occured while unmarshalling media scan payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}

	// The pipeline owns its failure handling end to end; returning an error
	// here would only trigger a retry of a scan that already recorded its
	// outcome.
	scan_usecases.ProcessMediaScan(media)
	return nil
}
