package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ImageList is the ordered list of image URLs stored on a listing as a JSON array.
type ImageList []string

// Value stores the list as JSON text so every driver accepts it.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan delegates to datatypes.JSONSlice, which understands both []byte and string columns.
func (l *ImageList) Scan(value interface{}) error {
	return (*datatypes.JSONSlice[string])(l).Scan(value)
}

// MarshalJSON renders a nil list as an empty array.
func (l ImageList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// GormDBDataType picks a JSON column type per driver.
// MSSQL has no json type, so it falls back to NVARCHAR(MAX).
func (ImageList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
