package game

// Side identifies one of the two players. By convention Left moves to a
// game's left options and Right moves to its right options.
type Side int

const (
	Left Side = iota
	Right
)

var sideName = map[Side]string{
	Left:  "Left",
	Right: "Right",
}

func (s Side) String() string {
	return sideName[s]
}

// Other returns the opposing side. Other is its own inverse.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}
