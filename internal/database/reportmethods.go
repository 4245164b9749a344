package database

import "audithive.dev/launcher/internal/entity"

func (d *Database) StoreReport(report *entity.Report, findings []entity.Finding) error {
	return d.delegate.StoreReport(report, findings)
}

func (d *Database) GetReports() ([]entity.Report, error) {
	return d.delegate.GetReports()
}

func (d *Database) GetReportBySlug(slug string) (entity.Report, error) {
	return d.delegate.GetReportBySlug(slug)
}

func (d *Database) GetFindingsByReport(report *entity.Report) ([]entity.Finding, error) {
	return d.delegate.GetFindingsByReport(report)
}
