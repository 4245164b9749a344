package analysis_test

import (
	"os"
	"path/filepath"
	"testing"

	"audithive.dev/launcher/internal/analysis"
	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	language, err := analysis.DetectLanguage([]string{
		"src/main.py",
		"src/util.py",
		"src/vendor/helper.js",
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "python", language)
}

func TestDetectLanguageGroupsExtensions(t *testing.T) {
	language, err := analysis.DetectLanguage([]string{
		"web/app.ts",
		"web/app.tsx",
		"web/index.jsx",
		"single.go",
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "javascript", language)
}

func TestDetectLanguageUnsupported(t *testing.T) {
	_, err := analysis.DetectLanguage([]string{"README.md", "notes.txt"})
	assert.ErrorIs(t, err, analysis.ErrUnsupportedLanguage)
}

func TestDetectLanguageEmpty(t *testing.T) {
	_, err := analysis.DetectLanguage(nil)
	assert.ErrorIs(t, err, analysis.ErrUnsupportedLanguage)
}

func TestBuildCommandMaven(t *testing.T) {
	sourcePath := t.TempDir()
	if err := os.WriteFile(filepath.Join(sourcePath, "pom.xml"), []byte("<project/>"), 0644); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "mvn clean compile -DskipTests", analysis.BuildCommand(sourcePath, "java"))
}

func TestBuildCommandGradle(t *testing.T) {
	sourcePath := t.TempDir()
	if err := os.WriteFile(filepath.Join(sourcePath, "gradlew"), []byte("#!/bin/sh"), 0755); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "./gradlew clean assemble", analysis.BuildCommand(sourcePath, "java"))
}

func TestBuildCommandPlainJava(t *testing.T) {
	assert.Equal(t, "javac -cp . *.java", analysis.BuildCommand(t.TempDir(), "java"))
}

func TestBuildCommandInterpreted(t *testing.T) {
	assert.Equal(t, "", analysis.BuildCommand(t.TempDir(), "python"))
	assert.Equal(t, "", analysis.BuildCommand(t.TempDir(), "javascript"))
}
