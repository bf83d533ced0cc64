package domain

import "sort"

// PartitionResult is the outcome of the exhaustive grouping search: the
// chosen pairwise-disjoint groups (jokers resolved into their tiles) and
// the tiles left outside every group, in hand order.
type PartitionResult struct {
	Groups   []Group
	Leftover []Tile
}

// partitionAcc is the externally owned best-result accumulator threaded
// through the search. A strictly smaller leftover count replaces the best;
// ties keep the partition discovered first.
type partitionAcc struct {
	leftover int
	groups   []Group
}

// BestPartition runs exhaustive backtracking over the candidate groups and
// returns the partition leaving the fewest tiles ungrouped. Candidates are
// considered in generation order and index-ordered recursion visits each
// combination of groups exactly once. Unused jokers count as leftover.
func BestPartition(tiles []Tile, jokers []Tile, candidates []Group) PartitionResult {
	total := len(tiles) + len(jokers)
	best := &partitionAcc{leftover: total + 1}
	used := make(map[int]bool, total)

	searchPartitions(candidates, 0, nil, used, jokers, 0, 0, total, best)

	usedIDs := make(map[int]bool, total)
	for _, g := range best.groups {
		for _, t := range g.Tiles {
			usedIDs[t.Identity] = true
		}
	}
	leftover := make([]Tile, 0, best.leftover)
	for _, t := range tiles {
		if !usedIDs[t.Identity] {
			leftover = append(leftover, t)
		}
	}
	for _, t := range jokers {
		if !usedIDs[t.Identity] {
			leftover = append(leftover, t)
		}
	}
	sort.Slice(leftover, func(i, j int) bool { return leftover[i].Identity < leftover[j].Identity })

	return PartitionResult{Groups: best.groups, Leftover: leftover}
}

func searchPartitions(candidates []Group, start int, chosen []Group, used map[int]bool, jokers []Tile, jokersUsed, usedCount, total int, best *partitionAcc) {
	if total-usedCount < best.leftover {
		best.leftover = total - usedCount
		best.groups = append([]Group(nil), chosen...)
	}

	for i := start; i < len(candidates); i++ {
		g := candidates[i]
		if g.JokersNeeded > len(jokers)-jokersUsed {
			continue
		}
		conflict := false
		for _, t := range g.Tiles {
			if used[t.Identity] {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		resolved := Group{Kind: g.Kind, Tiles: append([]Tile(nil), g.Tiles...)}
		if g.JokersNeeded > 0 {
			resolved.Tiles = append(resolved.Tiles, jokers[jokersUsed])
		}
		for _, t := range resolved.Tiles {
			used[t.Identity] = true
		}

		searchPartitions(candidates, i+1, append(chosen, resolved), used, jokers,
			jokersUsed+g.JokersNeeded, usedCount+len(resolved.Tiles), total, best)

		for _, t := range resolved.Tiles {
			used[t.Identity] = false
		}
	}
}
