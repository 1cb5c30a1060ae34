package nominal

// Value is the common supertype for members of any family. It exists for
// code that has to move mixed families through one channel; homogeneous
// code should prefer the typed Member methods, which make cross-family
// comparison a compile error instead of a runtime violation.
//
// Value is sealed: the unexported family method keeps every implementation
// inside this package, so a Value is always some Member[F].
type Value interface {
	// Ordinal returns the backing ordinal.
	Ordinal() Ordinal

	// String renders the value as "family(ordinal)".
	String() string

	family() familyKey
}

// Equal reports whether a and b are the same member of the same family.
//
// Operands from two different families are a contract violation: Equal
// writes a diagnostic to stderr and terminates the process with
// ExitCrossFamilyEqual. It never answers false for a mismatch - that
// answer would be indistinguishable from a legitimate inequality.
func Equal(a, b Value) bool {
	if a.family() != b.family() {
		fatalMismatch("Equal", a, b, ExitCrossFamilyEqual)
	}
	return a.Ordinal() == b.Ordinal()
}

// NotEqual reports whether a and b are different members of the same
// family.
//
// Operands from two different families terminate the process with
// ExitCrossFamilyNotEqual, distinguishable from Equal's fatal status so
// external tooling can tell which operator was misused.
func NotEqual(a, b Value) bool {
	if a.family() != b.family() {
		fatalMismatch("NotEqual", a, b, ExitCrossFamilyNotEqual)
	}
	return a.Ordinal() != b.Ordinal()
}

// SameFamily reports whether a and b belong to the same family. It is the
// non-fatal probe for harness code that needs to detect mixed operands
// before invoking Equal or NotEqual.
func SameFamily(a, b Value) bool {
	return a.family() == b.family()
}
