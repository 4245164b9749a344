package analysis

import (
	"encoding/json"
	"os"
	"strconv"

	"audithive.dev/launcher/internal/entity"
)

type sarifLog struct {
	Runs []sarifRun `json:"runs"`
}

type sarifRun struct {
	Results []sarifResult `json:"results"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

// ParseSARIF flattens a SARIF result file into finding rows.
func ParseSARIF(sarifPath string) (findings []entity.Finding, err error) {
	var sarifData []byte
	if sarifData, err = os.ReadFile(sarifPath); err != nil {
		return
	}
	var document sarifLog
	if err = json.Unmarshal(sarifData, &document); err != nil {
		return
	}

	for _, run := range document.Runs {
		for _, result := range run.Results {
			finding := entity.Finding{
				Rule:    result.RuleID,
				Level:   result.Level,
				File:    "-",
				Line:    "-",
				Message: result.Message.Text,
			}
			if finding.Rule == "" {
				finding.Rule = "unknown"
			}
			if finding.Level == "" {
				finding.Level = "warning"
			}
			if len(result.Locations) > 0 {
				physicalLocation := result.Locations[0].PhysicalLocation
				if physicalLocation.ArtifactLocation.URI != "" {
					finding.File = physicalLocation.ArtifactLocation.URI
					finding.Line = strconv.Itoa(physicalLocation.Region.StartLine)
				}
			}
			findings = append(findings, finding)
		}
	}
	return
}
