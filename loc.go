package resynth

import "fmt"

// Loc is source-location metadata attached to a statement or expression by
// the (external) parser. The interpreter carries the most recently seen Loc
// so that an error or warning can be attributed to it.
type Loc struct {
	Line   int
	Column int
}

// NilLoc is the zero location, used before any statement has been evaluated.
var NilLoc = Loc{}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
