package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

// StringArray stores []string in a PostgreSQL text[] column. Values are
// written and read in the textual array-literal encoding, e.g.
// {"first","second"}, with backslash and double-quote escaping.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		for _, r := range s {
			if r == '"' || r == '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String(), nil
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("StringArray.Scan: unsupported type %T", value)
	}
	parsed, err := parseArrayLiteral(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// GormDataType keeps AutoMigrate from guessing a column type.
func (StringArray) GormDataType() string { return "text[]" }

func parseArrayLiteral(raw string) (StringArray, error) {
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		return nil, errors.New("StringArray.Scan: malformed array literal")
	}
	inner := raw[1 : len(raw)-1]
	if inner == "" {
		return StringArray{}, nil
	}

	var (
		out        StringArray
		cur        strings.Builder
		inQuotes   bool
		escaped    bool
		quotedElem bool
	)
	flush := func() {
		s := cur.String()
		// Unquoted NULL is the only non-string element Postgres emits.
		if !quotedElem && s == "NULL" {
			s = ""
		}
		out = append(out, s)
		cur.Reset()
		quotedElem = false
	}
	for _, r := range inner {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && inQuotes:
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
			quotedElem = true
		case r == ',' && !inQuotes:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuotes || escaped {
		return nil, errors.New("StringArray.Scan: unterminated quoted element")
	}
	flush()
	return out, nil
}
