package repository

import (
	"sync"

	"nexora.io/entities"
	"nexora.io/infrastructure/database/connection/datastore"
	"nexora.io/infrastructure/database/repository/mongo"
)

var scanReportOnce = sync.Once{}

var scanReportRepository mongo.MongoRepository[entities.ScanReport]

func ScanReportRepo() *mongo.MongoRepository[entities.ScanReport] {
	scanReportOnce.Do(func() {
		scanReportRepository = mongo.MongoRepository[entities.ScanReport]{Model: datastore.ScanReportModel}
	})
	return &scanReportRepository
}
