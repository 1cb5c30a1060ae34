// Package nominal defines closed, named enumeration families whose values
// cannot be confused across families or with bare integers.
//
// A family is introduced by declaring an unexported tag type and aliasing
// the generic member type over it:
//
//	type colorTag struct{}
//	type Color = nominal.Member[colorTag]
//
//	var (
//		Red   = nominal.Of[colorTag](1)
//		Green = nominal.Of[colorTag](2)
//		Blue  = nominal.Of[colorTag](3)
//	)
//
// The tag type carries no state; it exists only to give the family a
// nominal identity. Because the tag is unexported, no other package can
// mint members of the family, so membership is closed at the point the
// declaring file is written. Distinct ordinals per member are the family
// author's responsibility - the package performs no numbering or
// distinctness check.
//
// Comparison has two paths. The typed path (Member.Equal, Member.NotEqual)
// only accepts operands of the same family; comparing a Color against a
// Direction does not compile. The polymorphic path (Equal, NotEqual) accepts
// any two values through the Value supertype, for code that funnels mixed
// families through one channel. On that path a cross-family comparison is a
// contract violation, not a boolean outcome: a false result would be
// indistinguishable from a legitimate inequality and would hide the bug.
// The violating operation writes a diagnostic to stderr and terminates the
// process with an operator-specific exit status (ExitCrossFamilyEqual or
// ExitCrossFamilyNotEqual).
//
// Members are immutable fixed-size values with no shared state. They may be
// freely copied, passed, and compared across goroutines without
// synchronization.
package nominal
