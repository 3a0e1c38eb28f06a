// Package docbr validates Brazilian taxpayer identification numbers.
//
// Two document families are supported: CPF (11 digits, issued to
// individuals) and CNPJ (14 digits, issued to legal entities). Input may be
// bare digits or carry the standard punctuation mask; Parse classifies the
// family from length and mask, strips separators, verifies the weighted
// mod 11 check digits, and returns an immutable Document wrapping the
// canonical digit string.
//
// Validation is structural only: a document that parses is arithmetically
// well formed, not necessarily issued to a real person or company.
//
// All functions are pure and safe for concurrent use.
package docbr

import "docbr/internal/digits"

// Parse validates input as either document family and returns the canonical
// Document. Classification is by byte length: 11 is a sanitized CPF, 18 a
// formatted CNPJ, and 14 is a formatted CPF when the CPF mask matches and a
// sanitized CNPJ otherwise. Any other length fails with ErrInvalidInput.
//
// The remaining stages run in a fixed order and the first failure wins:
// digit extraction (ErrInvalidCharacters), the all-equal-digits rule and the
// check-digit arithmetic (both ErrInvalidDocument).
func Parse(input string) (Document, error) {
	kind, d, err := evaluate(input)
	if err != nil {
		return Document{}, err
	}
	return Document{kind: kind, value: digits.String(d)}, nil
}

// MustParse is Parse for inputs known to be valid, such as fixtures and test
// literals. It panics on any validation error.
func MustParse(input string) Document {
	doc, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return doc
}

// Validate reports whether input is a well-formed document of either family.
// It returns nil on success and the same error Parse would return otherwise.
func Validate(input string) error {
	_, _, err := evaluate(input)
	return err
}

// evaluate classifies input by length and runs the matching family pipeline,
// returning the family and the extracted digit sequence.
func evaluate(input string) (Kind, []int, error) {
	switch len(input) {
	case cpfLen:
		d := digits.Strict(input)
		if err := validateCPF(d); err != nil {
			return "", nil, err
		}
		return KindCPF, d, nil
	case cnpjLen:
		// A 14-byte input is either a formatted CPF or a sanitized CNPJ;
		// the CPF mask resolves the collision.
		if cpfMask.MatchString(input) {
			d := digits.Strip(input)
			if err := validateCPF(d); err != nil {
				return "", nil, err
			}
			return KindCPF, d, nil
		}
		d := digits.Strict(input)
		if err := validateCNPJ(d); err != nil {
			return "", nil, err
		}
		return KindCNPJ, d, nil
	case cnpjFormattedLen:
		if !cnpjMask.MatchString(input) {
			return "", nil, ErrInvalidCharacters
		}
		d := digits.Strip(input)
		if err := validateCNPJ(d); err != nil {
			return "", nil, err
		}
		return KindCNPJ, d, nil
	default:
		return "", nil, ErrInvalidInput
	}
}
