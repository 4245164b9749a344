package engine

import (
	"fmt"
	"sync"
)

type Controller struct {
	engines                        []ApplicationEngine
	handler                        Handler
	coreThreadsInitializationGroup sync.WaitGroup
}

func NewController(engines []ApplicationEngine, handler Handler) (controller *Controller) {
	return &Controller{
		engines: engines,
		handler: handler,
	}
}

func (controller *Controller) Initialize() {
	for engineIndex, engine := range controller.engines {
		if engine == nil {
			panic(fmt.Sprintf("Engine %d is nil", engineIndex))
		}
		controller.coreThreadsInitializationGroup.Add(1)
		go engine.Initialize(&controller.coreThreadsInitializationGroup)
	}

	controller.coreThreadsInitializationGroup.Wait()
	controller.handler.NotifyStarted()
}

func (controller *Controller) Deinitialize() {
	for _, engine := range controller.engines {
		engine.Deinitialize()
	}
}
