package analysis

import (
	"os"
	"path/filepath"
)

// QuerySuite resolves the query suite for a language. A suite found in the
// local github/codeql checkout is preferred, otherwise the bare suite name is
// returned and the CLI resolves it through CodeQL packs.
func (analyzer *Analyzer) QuerySuite(language string) string {
	if _, err := os.Stat(analyzer.repositoryPath); err == nil {
		candidates := []string{
			filepath.Join(analyzer.repositoryPath, language, "ql", "src", "codeql-suites", language+"-security-and-quality.qls"),
			filepath.Join(analyzer.repositoryPath, language, "ql", "src", "codeql-suites", language+"-code-scanning.qls"),
		}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return language + "-security-and-quality.qls"
}
