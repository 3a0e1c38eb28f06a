package docbr

import (
	"regexp"

	"docbr/internal/digits"
)

// CPF shapes. A sanitized CPF is 11 bare digits; the formatted rendition
// carries the ###.###.###-## mask and is 14 bytes, the same length as a
// sanitized CNPJ. The classifier resolves that collision by trying the CPF
// mask first.
const (
	cpfLen          = 11
	cpfFormattedLen = 14
)

// cpfMask is the only punctuated CPF form accepted. Fixed literal pattern,
// no locale variation.
var cpfMask = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// ParseCPF parses input strictly as a CPF: 11 bare digits or the formatted
// ###.###.###-## rendition. A 14-byte input without the CPF mask is rejected
// with ErrInvalidCharacters even when it would classify as a sanitized CNPJ;
// use Parse when the family is not known up front.
func ParseCPF(input string) (Document, error) {
	var d []int
	switch len(input) {
	case cpfLen:
		d = digits.Strict(input)
	case cpfFormattedLen:
		if !cpfMask.MatchString(input) {
			return Document{}, ErrInvalidCharacters
		}
		d = digits.Strip(input)
	default:
		return Document{}, ErrInvalidInput
	}
	if err := validateCPF(d); err != nil {
		return Document{}, err
	}
	return Document{kind: KindCPF, value: digits.String(d)}, nil
}

// validateCPF applies the character, uniformity, and checksum stages to an
// extracted digit sequence. The caller picks the extraction mode; a short
// sequence means extraction hit a non-digit.
func validateCPF(d []int) error {
	if len(d) != cpfLen {
		return ErrInvalidCharacters
	}
	if digits.AllEqual(d) {
		return ErrInvalidDocument
	}
	return checkCPF(d)
}

// checkCPF verifies the two trailing check digits of an 11-digit sequence.
//
// The first check digit folds d0..d8 with descending weights 10..2; the
// second repeats the fold with weights 11..3 and adds the first check digit
// with weight 2. Each sum is multiplied by 10 and reduced mod 11, and a
// result of 10 maps to 0.
func checkCPF(d []int) error {
	var first, second int
	for i, v := range d[:9] {
		first += v * (10 - i)
		second += v * (11 - i)
	}
	first = first * 10 % 11
	if first == 10 {
		first = 0
	}
	second = (second + first*2) * 10 % 11
	if second == 10 {
		second = 0
	}
	if d[9] != first || d[10] != second {
		return ErrInvalidDocument
	}
	return nil
}
