package database

import "database/sql"

func (d *Database) GetUserVariable(name string) (string, error) {
	value, err := d.delegate.GetUserVariable(name)
	if err != nil || !value.Valid {
		return "", err
	}
	return value.String, nil
}

func (d *Database) SetUserVariable(name string, value string) error {
	return d.delegate.SetUserVariable(name, sql.NullString{String: value, Valid: true})
}
