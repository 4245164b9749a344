package sqlite

import "audithive.dev/launcher/internal/entity"

func (sqliteDelegate *SQLiteDelegate) Migrate() (err error) {
	return sqliteDelegate.database.AutoMigrate(&entity.Report{},
		&entity.Finding{}, &entity.UserVariable{})
}
