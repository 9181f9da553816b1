package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list-valued field (languages, skills, experience) that is
// persisted as a JSON-serialized TEXT column.
//
// It implements driver.Valuer and sql.Scanner so the encode/decode happens at
// the persistence edge only — repositories pass StringList values straight to
// ExecContext/Scan and no other layer ever touches the serialized form. The
// serialized form is also what the list filters match against with
// LIKE '%"Go"%', which is why storage stays JSON text rather than a join table.
type StringList []string

// Value serializes the list for storage. A nil list stores as "[]" so the
// column is never NULL and LIKE filters behave uniformly.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("model: encoding string list: %w", err)
	}
	return string(b), nil
}

// Scan deserializes a stored list. Malformed stored text degrades to an empty
// list rather than failing the whole row read — a single corrupt column must
// not 500 a list endpoint.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("model: cannot scan %T into StringList", src)
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		*l = StringList{}
		return nil
	}
	*l = out
	return nil
}
