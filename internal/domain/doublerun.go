package domain

type face struct {
	number int
	color  Color
}

// IsDoubleRun reports whether the normalized hand is a "double run": seven
// pairs of identical tiles covering the whole hand. Jokers may stand in for
// the missing half of a pair, or pair up with each other. A double run
// scores zero regardless of any other grouping, so it is checked before the
// candidate search runs.
func IsDoubleRun(tiles []Tile) bool {
	// pairs*2 must equal the hand length, so only a 14-tile hand qualifies.
	if len(tiles) != 2*7 {
		return false
	}

	counts := make(map[face]int)
	jokers := 0
	for _, t := range tiles {
		if t.IsJoker {
			jokers++
			continue
		}
		counts[face{t.Number, t.Color}]++
	}

	pairs := 0
	singles := 0
	for _, n := range counts {
		pairs += n / 2
		singles += n % 2
	}

	// Every odd face needs a joker to complete its pair.
	if singles > jokers {
		return false
	}
	pairs += singles
	jokers -= singles

	// Leftover jokers pair up with each other.
	pairs += jokers / 2

	return pairs == 7 && jokers%2 == 0
}
