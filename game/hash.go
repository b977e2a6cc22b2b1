package game

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

type GameHash uint64

// Hash returns a structural hash of g: equal shapes hash equally, option
// order included. Used to label positions in logs and experiment records;
// not a substitute for StructEqual.
func (g *Game) Hash() GameHash {
	hasher := fnv.New64a()
	g.hashInto(hasher)
	return GameHash(hasher.Sum64())
}

func (g *Game) hashInto(hasher hash.Hash64) {
	// Length prefixes keep {0|} and {|0} apart
	binary.Write(hasher, binary.LittleEndian, int64(len(g.left)))
	for _, o := range g.left {
		o.hashInto(hasher)
	}
	binary.Write(hasher, binary.LittleEndian, int64(len(g.right)))
	for _, o := range g.right {
		o.hashInto(hasher)
	}
}
