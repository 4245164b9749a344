package analysis

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var extensionLanguages = map[string]string{
	".java": "java",
	".py":   "python",
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "javascript",
	".tsx":  "javascript",
	".c":    "cpp",
	".cpp":  "cpp",
	".h":    "cpp",
	".cc":   "cpp",
	".cs":   "csharp",
	".go":   "go",
	".rb":   "ruby",
}

var ErrUnsupportedLanguage = errors.New("unsupported language or empty source")

// DetectLanguage picks the CodeQL language of a file list by majority of
// known source file extensions.
func DetectLanguage(filePaths []string) (string, error) {
	occurrences := map[string]int{}
	for _, filePath := range filePaths {
		extension := strings.ToLower(filepath.Ext(filePath))
		if language, ok := extensionLanguages[extension]; ok {
			occurrences[language]++
		}
	}
	detectedLanguage := ""
	for language, count := range occurrences {
		if detectedLanguage == "" || count > occurrences[detectedLanguage] {
			detectedLanguage = language
		}
	}
	if detectedLanguage == "" {
		return "", ErrUnsupportedLanguage
	}
	return detectedLanguage, nil
}

// BuildCommand returns the build command CodeQL needs for compiled
// languages, or an empty string when extraction works without one.
func BuildCommand(sourcePath string, language string) string {
	if language != "java" {
		return ""
	}
	if _, err := os.Stat(filepath.Join(sourcePath, "pom.xml")); err == nil {
		return "mvn clean compile -DskipTests"
	}
	if _, err := os.Stat(filepath.Join(sourcePath, "gradlew")); err == nil {
		return "./gradlew clean assemble"
	}
	return "javac -cp . *.java"
}
