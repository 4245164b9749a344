package configloader

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Structure to bind application parameters
type Config struct {
	LogLevel             string `mapstructure:"LOG_LEVEL"`              // logrus library log level to be assigned
	AppPath              string `mapstructure:"APP_PATH"`               // working directory the service is launched from
	ServerHost           string `mapstructure:"SERVER_HOST"`            // address the audit service binds to
	ServerPort           int    `mapstructure:"SERVER_PORT"`            // port the audit service listens on
	CodeQLBinaryPath     string `mapstructure:"CODEQL_BINARY_PATH"`     // CodeQL CLI executable
	CodeQLRepositoryPath string `mapstructure:"CODEQL_REPOSITORY_PATH"` // local checkout of the github/codeql repository
	RuntimeCheckCommand  string `mapstructure:"RUNTIME_CHECK_COMMAND"`  // command probing the service runtime
	ServiceCommand       string `mapstructure:"SERVICE_COMMAND"`        // command starting the audit service
	DatabasePath         string `mapstructure:"DATABASE_PATH"`          // local database base path
	ResultsPath          string `mapstructure:"RESULTS_PATH"`           // folder keeping the SARIF result files
}

// Initialize default parameters values
func initDefaultConfiguration() {
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_PATH", ".")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 1234)
	viper.SetDefault("CODEQL_BINARY_PATH", "codeql")
	viper.SetDefault("CODEQL_REPOSITORY_PATH", filepath.Join("$HOME", "codeql-repo", "codeql"))
	viper.SetDefault("RUNTIME_CHECK_COMMAND", "audithive -version")
	viper.SetDefault("SERVICE_COMMAND", "audithive")
	viper.SetDefault("DATABASE_PATH", ".")
	viper.SetDefault("RESULTS_PATH", "results")
}

// Load configuration from env file
func LoadConfiguration(applicationName string, configurationFilePath string) (config Config, err error) {
	initDefaultConfiguration()

	if configurationFilePath == "" {
		// Read the volume root path
		root := filepath.VolumeName(".")
		if root == "" {
			root = string(filepath.Separator)
		}

		// Set configuration named config from etc/*appName*, $HOME/.*appName* or current folders
		viper.AddConfigPath(filepath.Join(root, "etc", applicationName))
		viper.AddConfigPath(filepath.Join("$HOME", "."+applicationName))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	} else {
		// Set the configuration file path
		viper.SetConfigFile(configurationFilePath)
	}

	// Get configuration from environment variables, if set
	viper.AutomaticEnv()

	// Get configuration from configuration file, if set
	if configError := viper.ReadInConfig(); configError != nil {
		logrus.Warn(configError.Error())
	}
	err = viper.Unmarshal(&config)

	return
}
