package sqlite

import (
	"database/sql"

	"audithive.dev/launcher/internal/entity"
	"gorm.io/gorm"
)

func (sqliteDelegate *SQLiteDelegate) GetUserVariable(name string) (value sql.NullString, err error) {
	var userVariable entity.UserVariable
	if err = sqliteDelegate.first(&userVariable, "name = ?", name); err != nil {
		if err == gorm.ErrRecordNotFound {
			err = nil
		}
		return
	}
	value = userVariable.Value
	return
}

func (sqliteDelegate *SQLiteDelegate) SetUserVariable(name string, value sql.NullString) error {
	return sqliteDelegate.createOrUpdate(&entity.UserVariable{
		Name:  name,
		Value: value,
	})
}
