package launcher_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"audithive.dev/launcher/internal/configloader"
	"audithive.dev/launcher/internal/folder"
	"audithive.dev/launcher/internal/launcher"
	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
)

func testConfiguration(t *testing.T) configloader.Config {
	return configloader.Config{
		AppPath:        t.TempDir(),
		ServiceCommand: "audithive",
		ServerHost:     "0.0.0.0",
		ServerPort:     1234,
	}
}

// enterTestFolder moves the process into a scratch folder so the settings
// file lands there, restoring the previous folder afterwards.
func enterTestFolder(t *testing.T) {
	previousFolder, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err = os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Chdir(previousFolder)
	})
}

func TestBannerLines(t *testing.T) {
	enterTestFolder(t)
	instance, err := launcher.NewLauncher(testConfiguration(t))
	if err != nil {
		t.Fatal(err)
	}

	lines := instance.BannerLines()
	assert.Len(t, lines, 5)
	// A wildcard bind address is advertised through loopback
	assert.Contains(t, lines[0], "http://127.0.0.1:1234")
	assert.Contains(t, lines[1], "http://127.0.0.1:1234/")
	assert.Contains(t, lines[2], "http://127.0.0.1:1234/generator")
	assert.Contains(t, lines[3], "http://127.0.0.1:1234/reports")
	assert.Contains(t, lines[4], "http://127.0.0.1:1234/profile")
}

func TestPrintBannerOnce(t *testing.T) {
	enterTestFolder(t)
	output := &strings.Builder{}
	instance, err := launcher.NewLauncher(testConfiguration(t), launcher.WithOutput(output))
	if err != nil {
		t.Fatal(err)
	}

	instance.PrintBanner()
	for _, line := range instance.BannerLines() {
		assert.Equal(t, 1, strings.Count(output.String(), line))
	}
}

func TestStartRunsServiceInAppFolder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub not available")
	}
	enterTestFolder(t)

	configuration := testConfiguration(t)
	markerPath := filepath.Join(configuration.AppPath, "marker")
	scriptPath := filepath.Join(configuration.AppPath, "service.sh")
	if err := os.WriteFile(scriptPath, []byte("#!/bin/sh\npwd > marker\n"), 0755); err != nil {
		t.Fatal(err)
	}
	configuration.ServiceCommand = scriptPath

	instance, err := launcher.NewLauncher(configuration)
	if err != nil {
		t.Fatal(err)
	}
	if err = instance.Start(); err != nil {
		t.Fatal(err)
	}

	// The service must have been started from the application folder
	marker, err := os.ReadFile(markerPath)
	if err != nil {
		t.Fatal(err)
	}
	resolvedAppPath, err := filepath.EvalSymlinks(configuration.AppPath)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, resolvedAppPath, strings.TrimSpace(string(marker)))
}

func TestStartMissingService(t *testing.T) {
	enterTestFolder(t)
	configuration := testConfiguration(t)
	configuration.ServiceCommand = "audithive-unexistent-binary"

	instance, err := launcher.NewLauncher(configuration)
	if err != nil {
		t.Fatal(err)
	}
	assert.Error(t, instance.Start())
}

func TestWaitForAcknowledgment(t *testing.T) {
	enterTestFolder(t)
	output := &strings.Builder{}
	instance, err := launcher.NewLauncher(testConfiguration(t),
		launcher.WithInput(strings.NewReader("\n")),
		launcher.WithOutput(output))
	if err != nil {
		t.Fatal(err)
	}

	instance.WaitForAcknowledgment()
	assert.Contains(t, output.String(), "Press Enter to close")
}

func TestWaitForAcknowledgmentClosedInput(t *testing.T) {
	enterTestFolder(t)
	instance, err := launcher.NewLauncher(testConfiguration(t),
		launcher.WithInput(strings.NewReader("")),
		launcher.WithOutput(&strings.Builder{}))
	if err != nil {
		t.Fatal(err)
	}

	// A closed input must not block the final prompt
	instance.WaitForAcknowledgment()
}

func TestSettingsSync(t *testing.T) {
	enterTestFolder(t)
	configuration := testConfiguration(t)
	if _, err := launcher.NewLauncher(configuration); err != nil {
		t.Fatal(err)
	}

	settings := make(map[string]interface{})
	settingsFileData, err := os.ReadFile(folder.SettingsPath)
	if err != nil {
		t.Fatal(err)
	}
	if err = toml.Unmarshal(settingsFileData, &settings); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, configuration.AppPath, settings["app_path"])
	assert.Equal(t, "audithive", settings["service_command"])
}

func TestSettingsSyncKeepsUserKeys(t *testing.T) {
	enterTestFolder(t)
	if err := os.MkdirAll(filepath.Dir(folder.SettingsPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(folder.SettingsPath, []byte("custom_key = \"custom\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := launcher.NewLauncher(testConfiguration(t)); err != nil {
		t.Fatal(err)
	}

	settings := make(map[string]interface{})
	settingsFileData, err := os.ReadFile(folder.SettingsPath)
	if err != nil {
		t.Fatal(err)
	}
	if err = toml.Unmarshal(settingsFileData, &settings); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "custom", settings["custom_key"])
}
