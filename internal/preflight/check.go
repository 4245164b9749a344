package preflight

import (
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// CheckStatus represents the result of a preflight check.
type CheckStatus int

const (
	// StatusPass indicates the check passed successfully.
	StatusPass CheckStatus = iota
	// StatusFail indicates the check failed.
	StatusFail
)

// String returns the string representation of a CheckStatus.
func (status CheckStatus) String() string {
	switch status {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// CheckResult holds the result of a single preflight check.
type CheckResult struct {
	Name    string
	Status  CheckStatus
	Message string
}

// CommandCheck probes an external tool by running its version command. Only
// the process exit status matters, the output is not inspected.
type CommandCheck struct {
	Name    string
	Command []string
}

// Run executes the version command once and reports presence or absence.
func (check CommandCheck) Run() CheckResult {
	result := CheckResult{Name: check.Name, Status: StatusPass}
	if len(check.Command) == 0 {
		result.Status = StatusFail
		result.Message = check.Name + " check has no command configured"
		return result
	}
	logrus.Debugf("Checking %s: %s", check.Name, strings.Join(check.Command, " "))
	if err := exec.Command(check.Command[0], check.Command[1:]...).Run(); err != nil {
		result.Status = StatusFail
		result.Message = check.Name + " was not detected, please install it before starting the service"
		return result
	}
	result.Message = check.Name + " is available"
	return result
}

// Checker performs the environment verification checks in a fixed order.
type Checker struct {
	checks []CommandCheck
}

// New creates a Checker running the given checks in order.
func New(checks ...CommandCheck) *Checker {
	return &Checker{checks: checks}
}

// RunAll runs the checks sequentially and stops at the first failure: a
// check is never attempted when a previous one failed, and none is retried.
func (checker *Checker) RunAll() []CheckResult {
	var results []CheckResult
	for _, check := range checker.checks {
		result := check.Run()
		results = append(results, result)
		if result.Status == StatusFail {
			break
		}
	}
	return results
}

// FirstFailure returns the failed result, if any.
func FirstFailure(results []CheckResult) (CheckResult, bool) {
	for _, result := range results {
		if result.Status == StatusFail {
			return result, true
		}
	}
	return CheckResult{}, false
}
