package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONValue marshals v for a JSONB column.
func JSONValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return b, nil
}

// ScanJSON decodes a JSONB column into dst. NULL leaves dst untouched.
func ScanJSON(src interface{}, dst interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan jsonb: unsupported type %T", src)
	}

	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("scan jsonb: %w", err)
	}
	return nil
}
