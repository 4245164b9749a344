package sqlite_test

import (
	"testing"

	"audithive.dev/launcher/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestStoreReport(t *testing.T) {
	clearTestEnvironment()
	s := openTestDelegate(t)

	if err := s.StoreReport(&entity.Report{
		Slug:          "result_src_python",
		Language:      "python",
		FindingsCount: 2,
		SarifPath:     "results/result_src_python.sarif",
	}, []entity.Finding{{
		Rule:    "py/sql-injection",
		Level:   "error",
		File:    "app.py",
		Line:    "42",
		Message: "This query depends on a user-provided value.",
	}, {
		Rule:    "py/clear-text-logging-sensitive-data",
		Level:   "warning",
		File:    "app.py",
		Line:    "7",
		Message: "Sensitive data is logged as clear text.",
	}}); err != nil {
		t.Log(err)
		t.Fail()
	}

	if reports, err := s.GetReports(); err != nil {
		t.Log(err)
		t.Fail()
	} else {
		assert.Len(t, reports, 1)
		assert.Equal(t, "result_src_python", reports[0].Slug)
		assert.Equal(t, "python", reports[0].Language)
		assert.Equal(t, 2, reports[0].FindingsCount)
	}

	report, err := s.GetReportBySlug("result_src_python")
	if err != nil {
		t.Fatal(err)
	}
	if findings, err := s.GetFindingsByReport(&report); err != nil {
		t.Log(err)
		t.Fail()
	} else {
		assert.Len(t, findings, 2)
		for _, finding := range findings {
			assert.Equal(t, report.ID, finding.ReportID)
		}
	}

	s.Close()
	clearTestEnvironment()
}

func TestStoreReportWithoutFindings(t *testing.T) {
	clearTestEnvironment()
	s := openTestDelegate(t)

	if err := s.StoreReport(&entity.Report{
		Slug:      "result_src_go",
		Language:  "go",
		SarifPath: "results/result_src_go.sarif",
	}, nil); err != nil {
		t.Log(err)
		t.Fail()
	}

	report, err := s.GetReportBySlug("result_src_go")
	if err != nil {
		t.Fatal(err)
	}
	findings, err := s.GetFindingsByReport(&report)
	if err != nil {
		t.Fatal(err)
	}
	assert.Empty(t, findings)

	s.Close()
	clearTestEnvironment()
}
