package database

import (
	"sync"

	"audithive.dev/launcher/internal/database/delegate"
	"github.com/sirupsen/logrus"
)

type Database struct {
	basePath string
	delegate delegate.DatabaseDelegate
}

func NewDatabase(basePath string, delegate delegate.DatabaseDelegate) (instance *Database) {
	instance = &Database{
		basePath: basePath,
		delegate: delegate,
	}
	return
}

func (d *Database) Initialize(waitGroup *sync.WaitGroup) {
	// Create or update the database if needed
	logrus.Info("Connecting to database")
	if err := d.delegate.Open(d.basePath); err != nil {
		panic(err)
	}
	logrus.Info("Applying database migrations")
	if err := d.delegate.Migrate(); err != nil {
		panic(err)
	}

	waitGroup.Done()
}

func (d *Database) Deinitialize() {
	d.delegate.Close()
}
