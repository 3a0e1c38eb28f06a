package docbr

import (
	"regexp"

	"docbr/internal/digits"
)

// CNPJ shapes. A sanitized CNPJ is 14 bare digits; the formatted rendition
// carries the ##.###.###/####-## mask and is 18 bytes.
const (
	cnpjLen          = 14
	cnpjFormattedLen = 18
)

// cnpjMask is the only punctuated CNPJ form accepted. Fixed literal pattern,
// no locale variation.
var cnpjMask = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

// cnpjWeights is the positional weight table shared by both check-digit
// passes. The first pass folds d0..d11 with cnpjWeights[1:]; the second folds
// the same digits plus the first check digit with the full table.
var cnpjWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// ParseCNPJ parses input strictly as a CNPJ: 14 bare digits or the formatted
// ##.###.###/####-## rendition. A 14-byte input that carries CPF punctuation
// fails digit extraction and is rejected with ErrInvalidCharacters; use Parse
// when the family is not known up front.
func ParseCNPJ(input string) (Document, error) {
	var d []int
	switch len(input) {
	case cnpjLen:
		d = digits.Strict(input)
	case cnpjFormattedLen:
		if !cnpjMask.MatchString(input) {
			return Document{}, ErrInvalidCharacters
		}
		d = digits.Strip(input)
	default:
		return Document{}, ErrInvalidInput
	}
	if err := validateCNPJ(d); err != nil {
		return Document{}, err
	}
	return Document{kind: KindCNPJ, value: digits.String(d)}, nil
}

// validateCNPJ applies the character, uniformity, and checksum stages to an
// extracted digit sequence. The caller picks the extraction mode; a short
// sequence means extraction hit a non-digit.
func validateCNPJ(d []int) error {
	if len(d) != cnpjLen {
		return ErrInvalidCharacters
	}
	// An all-equal sequence is rejected before the arithmetic; the all-zero
	// sequence would otherwise satisfy both check-digit equations.
	if digits.AllEqual(d) {
		return ErrInvalidDocument
	}
	return checkCNPJ(d)
}

// checkCNPJ verifies the two trailing check digits of a 14-digit sequence.
func checkCNPJ(d []int) error {
	var first, second int
	for i, v := range d[:12] {
		first += v * cnpjWeights[i+1]
		second += v * cnpjWeights[i]
	}
	first = cnpjCheckDigit(first)
	second = cnpjCheckDigit(second + first*cnpjWeights[12])
	if d[12] != first || d[13] != second {
		return ErrInvalidDocument
	}
	return nil
}

// cnpjCheckDigit reduces a weighted sum to a check digit: remainders below 2
// map to 0, anything else to 11 minus the remainder.
func cnpjCheckDigit(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
