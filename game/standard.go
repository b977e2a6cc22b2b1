package game

// The standard small games, built bottom-up from Zero.
var (
	// Zero is the empty game {|}: whoever has to move loses.
	Zero = New(nil, nil)

	// One is {0|}: a single free move for Left.
	One = New([]*Game{Zero}, nil)

	// Two is {1|}: two free moves for Left.
	Two = New([]*Game{One}, nil)

	// MinusOne is {|0}: a single free move for Right.
	MinusOne = New(nil, []*Game{Zero})

	// Star is {0|0}: whoever moves first wins.
	Star = New([]*Game{Zero}, []*Game{Zero})
)
