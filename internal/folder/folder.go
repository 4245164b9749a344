package folder

import "path/filepath"

// Paths relative to the application working directory.
const (
	SYSTEM  = "system"
	RESULTS = "results"
	TEMP    = "temp"
)

// DatabasePath is the location of the local database file.
var DatabasePath = filepath.Join(SYSTEM, "audithive.db")

// SettingsPath is the location of the persisted launcher settings.
var SettingsPath = filepath.Join(SYSTEM, "launcher.cfg")
