package nominal

import (
	"fmt"
	"strings"
)

// Ordinal is the bounded integer backing a member's identity within its
// family. The contract range is MinOrdinal..MaxOrdinal; Of does not check
// it (authoring-time contract, like member distinctness). Ordinals are
// opaque storage - consumers compare members, not ordinals.
type Ordinal int16

// Contract bounds for Ordinal values chosen by family authors.
const (
	MinOrdinal Ordinal = -9999
	MaxOrdinal Ordinal = 9999
)

// Member is an immutable value of the enumeration family tagged by F.
//
// F is a tag type chosen by the family author and is never instantiated;
// it only gives the family its nominal identity. Member[A] and Member[B]
// are distinct types for distinct tags, even when both families use the
// same ordinals, so the typed comparison methods reject cross-family
// operands at compile time.
//
// The zero value has ordinal 0. Families that want to tell a declared
// member from an accidental zero value should start numbering at 1.
type Member[F any] struct {
	ord Ordinal
}

// Of constructs a member of the family tagged by F.
//
// No bounds or uniqueness validation is performed: keeping every ordinal
// inside the contract range and distinct within the family is the
// declaring author's responsibility.
func Of[F any](ord Ordinal) Member[F] {
	return Member[F]{ord: ord}
}

// Equal reports whether m and other are the same member. Operands of a
// different family are rejected by the compiler.
func (m Member[F]) Equal(other Member[F]) bool {
	return m.ord == other.ord
}

// NotEqual reports whether m and other are different members of the family.
func (m Member[F]) NotEqual(other Member[F]) bool {
	return m.ord != other.ord
}

// Ordinal returns the member's backing ordinal.
func (m Member[F]) Ordinal() Ordinal {
	return m.ord
}

// String renders the member as "family(ordinal)" for diagnostics,
// e.g. "cli.colorTag(2)".
func (m Member[F]) String() string {
	return fmt.Sprintf("%s(%d)", m.family(), m.ord)
}

// family returns the member's family identity. The key wraps a typed nil
// pointer to the tag type, so two keys compare equal exactly when their
// tag types are identical - identity is nominal, never ordinal-derived.
func (m Member[F]) family() familyKey {
	return familyKey{tag: (*F)(nil)}
}

// familyKey is the runtime discriminant for the polymorphic comparison
// path. Comparable; equal iff the wrapped tag types are the same type.
type familyKey struct {
	tag any
}

// String names the family after its tag type, e.g. "cli.colorTag".
func (k familyKey) String() string {
	return strings.TrimPrefix(fmt.Sprintf("%T", k.tag), "*")
}
