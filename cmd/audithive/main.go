package main

import (
	"flag"
	"fmt"

	"audithive.dev/launcher/internal/analysis"
	"audithive.dev/launcher/internal/configloader"
	"audithive.dev/launcher/internal/database"
	"audithive.dev/launcher/internal/database/delegate/sqlite"
	"audithive.dev/launcher/internal/engine"
	"audithive.dev/launcher/internal/server"
	"github.com/sirupsen/logrus"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "audithive"

// Overridden at build time through the linker.
var version = "develop"

type consoleHandler struct{}

func (consoleHandler) NotifyStarted() {
	logrus.Info("All engines initialized")
}

func main() {
	// Parsing the command line argument to change settings file location
	configurationFilePath := flag.String("config", "", "Configuration file path")
	showVersion := flag.Bool("version", false, "Print the application version and exit")
	flag.Parse()
	if *showVersion {
		fmt.Println(APPLICATION_NAME, version)
		return
	}

	// Loading application configuration
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, *configurationFilePath)
	if err != nil {
		logrus.Errorf("%+v", err)
		return
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		return
	}

	// Set log level
	logrus.SetLevel(level)
	if *configurationFilePath != "" {
		logrus.Infof("Loaded config file %s", *configurationFilePath)
	}

	databaseEngine := database.NewDatabase(configuration.DatabasePath, &sqlite.SQLiteDelegate{})
	analyzer, err := analysis.NewAnalyzer(
		configuration.CodeQLBinaryPath,
		configuration.CodeQLRepositoryPath,
		configuration.ResultsPath)
	if err != nil {
		logrus.Errorf("%+v", err)
		return
	}
	serverEngine, err := server.NewServer(configuration, databaseEngine, analyzer)
	if err != nil {
		logrus.Errorf("%+v", err)
		return
	}

	controller := engine.NewController([]engine.ApplicationEngine{
		databaseEngine,
		analyzer,
		serverEngine,
	}, consoleHandler{})
	controller.Initialize()
	defer controller.Deinitialize()

	if err = serverEngine.Run(); err != nil {
		logrus.Fatalf("%+v", err)
	}
}
