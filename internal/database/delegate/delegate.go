package delegate

import (
	"database/sql"

	"audithive.dev/launcher/internal/entity"
)

type DatabaseDelegate interface {
	Open(basePath string) error
	Migrate() error
	Close() error

	StoreReport(report *entity.Report, findings []entity.Finding) error
	GetReports() ([]entity.Report, error)
	GetReportBySlug(slug string) (entity.Report, error)
	GetFindingsByReport(report *entity.Report) ([]entity.Finding, error)

	GetUserVariable(name string) (sql.NullString, error)
	SetUserVariable(name string, value sql.NullString) error
}
