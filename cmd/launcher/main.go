package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"audithive.dev/launcher/internal/configloader"
	"audithive.dev/launcher/internal/launcher"
	"audithive.dev/launcher/internal/preflight"
	"github.com/sirupsen/logrus"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "audithive"

func main() {
	os.Exit(run())
}

func run() int {
	// Parsing the command line argument to change settings file location
	configurationFilePath := flag.String("config", "", "Configuration file path")
	flag.Parse()
	// Loading application configuration
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, *configurationFilePath)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}

	// Set log level
	logrus.SetLevel(level)
	if *configurationFilePath != "" {
		logrus.Infof("Loaded config file %s", *configurationFilePath)
	}

	instance, err := launcher.NewLauncher(configuration)
	if err != nil {
		logrus.Errorf("%+v", err)
		return 1
	}
	// The final prompt must be reached exactly once on every exit path,
	// including failed environment checks
	defer instance.WaitForAcknowledgment()

	// Verify the environment before anything else: the service runtime
	// first, the CodeQL CLI second. A failed check stops the procedure.
	checker := preflight.New(
		preflight.CommandCheck{
			Name:    "service runtime",
			Command: strings.Fields(configuration.RuntimeCheckCommand),
		},
		preflight.CommandCheck{
			Name:    "CodeQL CLI",
			Command: []string{configuration.CodeQLBinaryPath, "version"},
		},
	)
	if failure, failed := preflight.FirstFailure(checker.RunAll()); failed {
		fmt.Println(failure.Message)
		return 1
	}

	instance.PrintBanner()
	if err = instance.Start(); err != nil {
		logrus.Errorf("%+v", err)
	}
	return 0
}
