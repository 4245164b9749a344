package sqlite

import (
	"audithive.dev/launcher/internal/entity"
	"gorm.io/gorm"
)

func (sqliteDelegate *SQLiteDelegate) StoreReport(report *entity.Report, findings []entity.Finding) error {
	return sqliteDelegate.database.Transaction(func(transaction *gorm.DB) error {
		// The result file name is stable per source and language, so a new
		// run replaces the previous history entry
		var previousReport entity.Report
		if result := transaction.Where("slug = ?", report.Slug).First(&previousReport); result.Error == nil {
			if result := transaction.Where("report_id = ?", previousReport.ID).Delete(&entity.Finding{}); result.Error != nil {
				return result.Error
			}
			if result := transaction.Delete(&previousReport); result.Error != nil {
				return result.Error
			}
		} else if result.Error != gorm.ErrRecordNotFound {
			return result.Error
		}
		if result := transaction.Create(report); result.Error != nil {
			return result.Error
		}
		for findingIndex := range findings {
			findings[findingIndex].ReportID = report.ID
		}
		if len(findings) == 0 {
			return nil
		}
		if result := transaction.Create(&findings); result.Error != nil {
			return result.Error
		}
		return nil
	})
}

func (sqliteDelegate *SQLiteDelegate) GetReports() (entities []entity.Report, err error) {
	if result := sqliteDelegate.database.Order("created_at desc").Find(&entities); result.Error != nil {
		err = result.Error
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) GetReportBySlug(slug string) (entity entity.Report, err error) {
	err = sqliteDelegate.first(&entity, "slug = ?", slug)
	return
}

func (sqliteDelegate *SQLiteDelegate) GetFindingsByReport(report *entity.Report) (entities []entity.Finding, err error) {
	if result := sqliteDelegate.database.Where("report_id = ?", report.ID).Find(&entities); result.Error != nil {
		err = result.Error
	}
	return
}
