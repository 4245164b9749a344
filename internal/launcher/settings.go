package launcher

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"audithive.dev/launcher/internal/folder"
	"github.com/BurntSushi/toml"
)

// syncSettings merges the persisted launcher settings with the effective
// configuration and writes the file back. Keys added by the user are kept,
// keys managed here always reflect the running configuration.
func (launcher *Launcher) syncSettings() (err error) {
	launcher.settings = make(map[string]interface{})
	launcher.settings["app_path"] = launcher.appPath
	launcher.settings["service_command"] = strings.Join(launcher.serviceCommand, " ")
	launcher.settings["server_host"] = launcher.serverHost
	launcher.settings["server_port"] = launcher.serverPort

	settingsPath := folder.SettingsPath
	savedSettingsMap := make(map[string]interface{})
	if _, err = os.Stat(settingsPath); !os.IsNotExist(err) {
		var settingsFileData []byte
		if settingsFileData, err = os.ReadFile(settingsPath); err != nil {
			return
		}
		if err = toml.Unmarshal(settingsFileData, &savedSettingsMap); err != nil {
			return
		}
	}
	for settingKey, settingValue := range savedSettingsMap {
		if _, ok := launcher.settings[settingKey]; !ok {
			launcher.settings[settingKey] = settingValue
		}
	}

	if err = os.MkdirAll(filepath.Dir(settingsPath), 0755); err != nil {
		return
	}
	var file *os.File
	if file, err = os.OpenFile(settingsPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644); err != nil {
		return
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	if err = toml.NewEncoder(writer).Encode(launcher.settings); err != nil {
		return
	}
	return writer.Flush()
}
