package docbr

// Kind identifies the document family of a validated value.
// Invariant: the value is one of the two supported families. No further
// families are anticipated, so callers should switch exhaustively over Kind
// rather than abstract over it.
type Kind string

// Supported document families.
const (
	// KindCPF is the 11-digit individual taxpayer number.
	KindCPF Kind = "cpf"
	// KindCNPJ is the 14-digit legal-entity taxpayer number.
	KindCNPJ Kind = "cnpj"
)

// IsValid checks if the kind is one of the supported families.
func (k Kind) IsValid() bool {
	return k == KindCPF || k == KindCNPJ
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}
