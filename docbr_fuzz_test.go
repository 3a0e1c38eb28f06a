//go:build go1.18

package docbr

import (
	"errors"
	"testing"
)

// FuzzParse checks the pipeline invariants over arbitrary input: parsing
// never panics, every rejection is one of the three sentinel errors, and
// every accepted input yields a Document whose canonical and formatted
// renditions parse back to the identical value.
func FuzzParse(f *testing.F) {
	f.Add("96865090039")
	f.Add("288.111.210-27")
	f.Add("03165685000114")
	f.Add("89.654.922/0001-26")
	f.Add("11111111111")
	f.Add("00000000000000")
	f.Add("272676S6021")
	f.Add("66.114.93S/0001-07")
	f.Add("")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		doc, err := Parse(input)

		if err != nil {
			if !errors.Is(err, ErrInvalidInput) &&
				!errors.Is(err, ErrInvalidCharacters) &&
				!errors.Is(err, ErrInvalidDocument) {
				t.Errorf("Parse(%q) returned an error outside the taxonomy: %v", input, err)
			}
			if !doc.IsZero() {
				t.Errorf("Parse(%q) returned both a document and an error", input)
			}
			return
		}

		if !doc.Kind().IsValid() {
			t.Errorf("Parse(%q) produced unknown kind %q", input, doc.Kind())
		}
		switch doc.Kind() {
		case KindCPF:
			if len(doc.String()) != cpfLen {
				t.Errorf("cpf canonical form has length %d", len(doc.String()))
			}
		case KindCNPJ:
			if len(doc.String()) != cnpjLen {
				t.Errorf("cnpj canonical form has length %d", len(doc.String()))
			}
		}

		canonical, err := Parse(doc.String())
		if err != nil {
			t.Errorf("canonical form %q failed to re-parse: %v", doc.String(), err)
		}
		if canonical != doc {
			t.Error("canonical round-trip changed the document")
		}

		formatted, err := Parse(doc.Formatted())
		if err != nil {
			t.Errorf("formatted form %q failed to re-parse: %v", doc.Formatted(), err)
		}
		if formatted != doc {
			t.Error("formatted round-trip changed the document")
		}
	})
}

// FuzzValidate ensures the predicate form never disagrees with Parse.
func FuzzValidate(f *testing.F) {
	f.Add("96865090039")
	f.Add("89.654.922/0001-26")
	f.Add("2881121027")
	f.Add("not a document")

	f.Fuzz(func(t *testing.T, input string) {
		_, parseErr := Parse(input)
		if validateErr := Validate(input); validateErr != parseErr {
			t.Errorf("Parse and Validate disagree for %q: %v vs %v", input, parseErr, validateErr)
		}
	})
}
