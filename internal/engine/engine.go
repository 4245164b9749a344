package engine

import "sync"

// ApplicationEngine is a long-lived subsystem booted by the Controller.
type ApplicationEngine interface {
	Initialize(waitGroup *sync.WaitGroup)
	Deinitialize()
}

// Handler is notified once every engine finished its initialization.
type Handler interface {
	NotifyStarted()
}
