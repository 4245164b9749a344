package launcher

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"audithive.dev/launcher/internal/configloader"
	"github.com/sirupsen/logrus"
)

// Launcher starts the audit service as a blocking foreground process after
// printing the informational banner. It keeps the console open with a final
// acknowledgment prompt so the messages stay readable when the program is
// started by double-click.
type Launcher struct {
	appPath        string
	serviceCommand []string
	serverHost     string
	serverPort     int
	input          io.Reader
	output         io.Writer
	settings       map[string]interface{}
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithInput sets the reader used for the acknowledgment prompt.
func WithInput(input io.Reader) Option {
	return func(launcher *Launcher) {
		launcher.input = input
	}
}

// WithOutput sets the writer used for the banner and the prompt.
func WithOutput(output io.Writer) Option {
	return func(launcher *Launcher) {
		launcher.output = output
	}
}

func NewLauncher(configuration configloader.Config, options ...Option) (instance *Launcher, err error) {
	instance = &Launcher{
		appPath:        configuration.AppPath,
		serviceCommand: strings.Fields(configuration.ServiceCommand),
		serverHost:     configuration.ServerHost,
		serverPort:     configuration.ServerPort,
		input:          os.Stdin,
		output:         os.Stdout,
	}
	for _, option := range options {
		option(instance)
	}
	if syncError := instance.syncSettings(); syncError != nil {
		logrus.Warnf("Cannot persist launcher settings: %+v", syncError)
	}
	return
}

// displayHost is the address printed in the banner. A wildcard bind address
// is only reachable through loopback from the user's point of view.
func (launcher *Launcher) displayHost() string {
	if launcher.serverHost == "" || launcher.serverHost == "0.0.0.0" {
		return "127.0.0.1"
	}
	return launcher.serverHost
}

// BannerLines returns the informational lines printed once both environment
// checks passed, before the service is started.
func (launcher *Launcher) BannerLines() []string {
	baseURL := fmt.Sprintf("http://%s:%d", launcher.displayHost(), launcher.serverPort)
	return []string{
		"Service address:  " + baseURL,
		"Code audit:       " + baseURL + "/",
		"Rule generator:   " + baseURL + "/generator",
		"Report history:   " + baseURL + "/reports",
		"Profile:          " + baseURL + "/profile",
	}
}

func (launcher *Launcher) PrintBanner() {
	for _, line := range launcher.BannerLines() {
		fmt.Fprintln(launcher.output, line)
	}
}

// Start switches to the application folder and runs the service command in
// the foreground, inheriting the console. It returns once the service
// process exited, whatever the reason.
func (launcher *Launcher) Start() (err error) {
	if len(launcher.serviceCommand) == 0 {
		return fmt.Errorf("no service command configured")
	}
	if err = os.Chdir(launcher.appPath); err != nil {
		return fmt.Errorf("cannot enter the application folder %s: %w", launcher.appPath, err)
	}
	process := exec.Command(launcher.serviceCommand[0], launcher.serviceCommand[1:]...)
	process.Stdin = os.Stdin
	process.Stdout = os.Stdout
	process.Stderr = os.Stderr
	logrus.Debugf("Starting the audit service: %s", strings.Join(launcher.serviceCommand, " "))
	return process.Run()
}

// WaitForAcknowledgment blocks until the user presses Enter, keeping the
// window open. It must be reached exactly once on every exit path.
func (launcher *Launcher) WaitForAcknowledgment() {
	fmt.Fprint(launcher.output, "Press Enter to close...")
	reader := bufio.NewReader(launcher.input)
	if _, err := reader.ReadString('\n'); err != nil {
		logrus.Debugf("Acknowledgment input closed: %+v", err)
	}
}
