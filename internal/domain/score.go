package domain

// ScoreResult describes how close a hand is to complete: the leftover
// count is the hand's score, lower is better. Groups and Ungrouped are
// diagnostic and empty for a double run.
type ScoreResult struct {
	Leftover  int
	Groups    []Group
	Ungrouped []Tile
	DoubleRun bool
}

// ScoreHand evaluates a hand of raw tile codes under the round's joker
// rules and returns the minimum number of tiles that cannot be placed in
// any valid set or run. The call is pure: no state is shared between
// invocations, so hands may be scored concurrently.
func ScoreHand(codes []int, jc JokerContext) (ScoreResult, error) {
	tiles, err := NormalizeHand(codes, jc)
	if err != nil {
		return ScoreResult{}, err
	}

	if IsDoubleRun(tiles) {
		return ScoreResult{DoubleRun: true}, nil
	}

	regular := make([]Tile, 0, len(tiles))
	jokers := make([]Tile, 0, 2)
	for _, t := range tiles {
		if t.IsJoker {
			jokers = append(jokers, t)
		} else {
			regular = append(regular, t)
		}
	}

	candidates := GenerateGroups(regular, len(jokers))
	part := BestPartition(regular, jokers, candidates)

	return ScoreResult{
		Leftover:  len(part.Leftover),
		Groups:    part.Groups,
		Ungrouped: part.Leftover,
	}, nil
}
