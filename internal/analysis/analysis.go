package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"audithive.dev/launcher/pkg/eventemitter"
	"github.com/sirupsen/logrus"
)

// Phase describes the progress of one analysis run.
type Phase int

const (
	CREATING_DATABASE Phase = iota
	ANALYZING
	COMPLETED
)

func (phase Phase) String() string {
	switch phase {
	case CREATING_DATABASE:
		return "creating database"
	case ANALYZING:
		return "analyzing"
	case COMPLETED:
		return "completed"
	}
	return "unknown"
}

// Timeout applied to every external CodeQL invocation.
const commandTimeout = 600 * time.Second

type Analyzer struct {
	binaryPath     string
	repositoryPath string
	resultsPath    string

	ProgressEventEmitter *eventemitter.EventEmitter[Phase]
}

func NewAnalyzer(binaryPath string, repositoryPath string, resultsPath string) (instance *Analyzer, err error) {
	instance = &Analyzer{
		binaryPath:           binaryPath,
		repositoryPath:       os.ExpandEnv(repositoryPath),
		resultsPath:          resultsPath,
		ProgressEventEmitter: &eventemitter.EventEmitter[Phase]{},
	}
	return
}

func (analyzer *Analyzer) Initialize(waitGroup *sync.WaitGroup) {
	if _, err := os.Stat(analyzer.resultsPath); os.IsNotExist(err) {
		if err = os.MkdirAll(analyzer.resultsPath, 0755); err != nil {
			panic(err)
		}
	}
	if _, err := exec.LookPath(analyzer.binaryPath); err != nil {
		logrus.Warnf("CodeQL binary %s not found in PATH, analysis requests will fail", analyzer.binaryPath)
	}
	waitGroup.Done()
}

func (analyzer *Analyzer) Deinitialize() {}

// Run creates a CodeQL database for the source folder and analyzes it with
// the suite resolved for the language. It returns the path of the SARIF
// result file written under the results folder.
func (analyzer *Analyzer) Run(ctx context.Context, sourcePath string, language string) (resultPath string, err error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	var absoluteSourcePath string
	if absoluteSourcePath, err = filepath.Abs(sourcePath); err != nil {
		return
	}
	databasePath := filepath.Join(sourcePath, "codeql_db")

	createArguments := []string{
		"database", "create", databasePath,
		"--language=" + language,
		"--source-root=" + absoluteSourcePath,
		"--overwrite",
	}
	buildCommand := BuildCommand(sourcePath, language)
	if buildCommand != "" {
		createArguments = append(createArguments, "--command="+buildCommand)
	}

	analyzer.ProgressEventEmitter.Emit(CREATING_DATABASE)
	logrus.Infof("Creating CodeQL database for %s", language)
	if output, createError := exec.CommandContext(ctx, analyzer.binaryPath, createArguments...).CombinedOutput(); createError != nil {
		logrus.Warnf("Database creation failed: %s", string(output))
		// Interpreted languages may still produce a database without a
		// build command, compiled ones cannot recover here
		if buildCommand == "" {
			err = fmt.Errorf("cannot create the CodeQL database: %w", createError)
			return
		}
	}

	resultPath = filepath.Join(
		analyzer.resultsPath,
		fmt.Sprintf("result_%s_%s.sarif", filepath.Base(absoluteSourcePath), language))

	querySuite := analyzer.QuerySuite(language)
	logrus.Infof("Using query suite %s", querySuite)

	analyzer.ProgressEventEmitter.Emit(ANALYZING)
	if analyzeError := analyzer.analyzeDatabase(ctx, databasePath, querySuite, resultPath); analyzeError != nil {
		// Fall back to the lighter code scanning suite before giving up
		fallbackSuite := language + "-code-scanning.qls"
		logrus.Warnf("Analysis with %s failed, retrying with %s", querySuite, fallbackSuite)
		if analyzeError = analyzer.analyzeDatabase(ctx, databasePath, fallbackSuite, resultPath); analyzeError != nil {
			err = fmt.Errorf("analysis failed: %w", analyzeError)
			return
		}
	}

	if _, statError := os.Stat(resultPath); os.IsNotExist(statError) {
		if err = os.WriteFile(resultPath, emptySarif(), 0644); err != nil {
			return
		}
	}

	analyzer.ProgressEventEmitter.Emit(COMPLETED)
	return
}

func (analyzer *Analyzer) analyzeDatabase(ctx context.Context, databasePath string, querySuite string, resultPath string) error {
	arguments := []string{
		"database", "analyze", databasePath, querySuite,
		"--format=sarif-latest",
		"--output=" + resultPath,
		"--download",
	}
	if output, err := exec.CommandContext(ctx, analyzer.binaryPath, arguments...).CombinedOutput(); err != nil {
		logrus.Warnf("CodeQL analyze failed: %s", string(output))
		return err
	}
	return nil
}

func emptySarif() []byte {
	document, _ := json.Marshal(map[string]interface{}{"runs": []interface{}{}})
	return document
}
