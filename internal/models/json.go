package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSON é uma coluna jsonb genérica (Postgres)
type JSON json.RawMessage

func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSON) Scan(value any) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
		return nil
	case string:
		*j = JSON(v)
		return nil
	default:
		return errors.New("models: tipo incompatível para coluna JSON")
	}
}

func (j JSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSON) UnmarshalJSON(data []byte) error {
	if j == nil {
		return errors.New("models: UnmarshalJSON em ponteiro nulo")
	}
	*j = append((*j)[0:0], data...)
	return nil
}

func (JSON) GormDataType() string {
	return "jsonb"
}
