package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const naiveLayout = "2006-01-02T15:04:05"

// DateTime is a timezone-aware timestamp. JSON input may be RFC3339 or a
// naive datetime without offset; naive values get the system local timezone
// attached during decoding. The normalization is idempotent: an already
// aware value is parsed as-is.
type DateTime struct {
	time.Time
}

// NewDateTime wraps a time.Time in a DateTime
func NewDateTime(t time.Time) *DateTime {
	return &DateTime{Time: t}
}

// ParseDateTime parses an RFC3339 or naive datetime string
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(naiveLayout, value, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid datetime: %q", value)
}

func (dt *DateTime) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	if value == "" {
		return nil
	}

	parsed, err := ParseDateTime(value)
	if err != nil {
		return err
	}
	dt.Time = parsed
	return nil
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(dt.Time.Format(time.RFC3339))
}

// Value implements driver.Valuer so GORM persists the underlying time
func (dt DateTime) Value() (driver.Value, error) {
	return dt.Time, nil
}

// Scan implements sql.Scanner
func (dt *DateTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		dt.Time = v
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateTime", value)
	}
}

// GormDataType tells GORM which column type to migrate to
func (DateTime) GormDataType() string {
	return "timestamptz"
}
