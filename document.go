package docbr

import (
	"database/sql/driver"
	"fmt"
)

// Document is a validated Brazilian taxpayer identification number: a CPF
// for an individual or a CNPJ for a legal entity.
//
// Invariants:
//   - the wrapped value contains only ASCII digits
//   - the value length is exactly 11 (CPF) or 14 (CNPJ)
//   - a non-zero Document exists only as the result of successful validation
//
// Documents are immutable and compare with ==, so they work as map keys.
// Construct via Parse, ParseCPF, ParseCNPJ, or MustParse; the zero value
// means "no document" and reports IsZero.
type Document struct {
	kind  Kind
	value string
}

// Kind returns the document family.
func (d Document) Kind() Kind { return d.kind }

// IsZero reports whether d is the zero value rather than a parsed document.
func (d Document) IsZero() bool { return d == Document{} }

// String returns the canonical sanitized form: bare digits, no punctuation.
func (d Document) String() string { return d.value }

// Formatted renders the document with its standard punctuation mask,
// ###.###.###-## for a CPF and ##.###.###/####-## for a CNPJ. The zero
// value renders as an empty string.
func (d Document) Formatted() string {
	switch d.kind {
	case KindCPF:
		return d.value[:3] + "." + d.value[3:6] + "." + d.value[6:9] + "-" + d.value[9:]
	case KindCNPJ:
		return d.value[:2] + "." + d.value[2:5] + "." + d.value[5:8] + "/" + d.value[8:12] + "-" + d.value[12:]
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler. The canonical digit string
// is emitted. The zero value marshals to an empty string, which does not
// unmarshal back.
func (d Document) MarshalText() ([]byte, error) {
	return []byte(d.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by running the full
// validation pipeline on text, so a Document decoded from JSON or XML holds
// the same guarantees as one built with Parse.
func (d *Document) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer. The canonical digit string is stored; the
// zero value stores as NULL.
func (d Document) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.value, nil
}

// Scan implements sql.Scanner. Scanning revalidates, so a stored value that
// no longer passes the pipeline surfaces an error instead of a corrupt
// Document. NULL scans to the zero value.
func (d *Document) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Document{}
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into Document", src)
	}
}
