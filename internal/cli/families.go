package cli

import "github.com/roach88/nominal"

// Demo families for the self-check and violate commands. They mirror the
// canonical host-code pattern: an unexported tag type closes the family,
// an alias names it, and each member gets a distinct ordinal chosen here.

type colorTag struct{}

// Color is the demo color family.
type Color = nominal.Member[colorTag]

// Color members.
var (
	Red   = nominal.Of[colorTag](1)
	Green = nominal.Of[colorTag](2)
	Blue  = nominal.Of[colorTag](3)
)

type directionTag struct{}

// Direction is the demo direction family, independent of Color even though
// the ordinal ranges overlap.
type Direction = nominal.Member[directionTag]

// Direction members.
var (
	North = nominal.Of[directionTag](1)
	South = nominal.Of[directionTag](2)
	East  = nominal.Of[directionTag](3)
	West  = nominal.Of[directionTag](4)
)

// colorMembers and directionMembers enumerate the demo members for the
// property checks. The checks own these slices; the families themselves
// expose no runtime membership.
var (
	colorMembers     = []nominal.Value{Red, Green, Blue}
	directionMembers = []nominal.Value{North, South, East, West}
)
