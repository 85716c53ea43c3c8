package infrastructure

import (
	"sync"

	messagequeue "nexora.io/infrastructure/message_queue"
	startup "nexora.io/infrastructure/startUp"
)

func StartServer() {
	startup.StartServices()
	defer startup.CleanUpServices()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		messagequeue.StartQueue()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		startGinServer()
	}()

	wg.Wait()
}
