package startup

import (
	"nexora.io/infrastructure/database"
	"nexora.io/infrastructure/database/connection/datastore"
	"nexora.io/infrastructure/detection/face"
	"nexora.io/infrastructure/detection/inference"
	"nexora.io/infrastructure/logger"
	"nexora.io/infrastructure/storage"
)

// StartServices boots everything the request path and the pipeline depend on.
// Order matters: the detectors log through the logger and the pipeline writes
// through the database.
func StartServices() {
	logger.InitializeLogger()
	database.SetUpDatabase()
	storage.InitialiseStorage()
	face.InitialiseFaceLocator()
	inference.InitialiseInferenceService()
}

// CleanUpServices releases long lived handles on shutdown.
func CleanUpServices() {
	if face.Locator != nil {
		face.Locator.Close()
	}
	datastore.CleanUp()
	logger.Info("cleaned up application services")
}
