package connection

import (
	"nexora.io/infrastructure/database/connection/cache"
	"nexora.io/infrastructure/database/connection/datastore"
)

func ConnectToDatabase() {
	datastore.ConnectToDatabase()
	cache.ConnectToCache()
}
