package domain

import (
	"sort"
	"strconv"
	"strings"
)

// GroupKind distinguishes the two legal meld shapes.
type GroupKind string

const (
	// GroupSet holds one number in distinct colors.
	GroupSet GroupKind = "SET"
	// GroupRun holds consecutive numbers in one color.
	GroupRun GroupKind = "RUN"
)

// Group is a meld of 3 or 4 tiles. As a candidate, Tiles holds only the
// concrete members and JokersNeeded records how many wildcards complete it
// (never more than one); the partition search assigns whichever joker
// instance is still free when the group is chosen.
type Group struct {
	Kind         GroupKind
	Tiles        []Tile
	JokersNeeded int
}

// Size is the full meld size including the joker slot.
func (g Group) Size() int {
	return len(g.Tiles) + g.JokersNeeded
}

func (g Group) String() string {
	parts := make([]string, 0, g.Size())
	for _, t := range g.Tiles {
		parts = append(parts, t.String())
	}
	for i := 0; i < g.JokersNeeded; i++ {
		parts = append(parts, "okey")
	}
	return string(g.Kind) + "[" + strings.Join(parts, " ") + "]"
}

// key identifies a group by the multiset of faces it consumes plus its
// joker need. Which duplicate instance or joker fills a slot is
// interchangeable, so those do not enter the key.
func (g Group) key() string {
	parts := make([]string, 0, len(g.Tiles)+1)
	for _, t := range g.Tiles {
		parts = append(parts, strconv.Itoa(t.Number)+"."+strconv.Itoa(int(t.Color)))
	}
	sort.Strings(parts)
	parts = append(parts, "j"+strconv.Itoa(g.JokersNeeded))
	return strings.Join(parts, "|")
}

var groupColors = []Color{ColorYellow, ColorBlue, ColorBlack, ColorRed}

// GenerateGroups enumerates every deduplicated 3- or 4-tile set and run
// buildable from the non-joker tiles, using at most one joker per group.
// Duplicate faces contribute a single representative; the remaining copy
// stays available for other groups. Generation order is deterministic:
// sets by ascending number, then runs by color and window start.
func GenerateGroups(tiles []Tile, jokerCount int) []Group {
	byNumber := make(map[int]map[Color]Tile)
	byColor := make(map[Color]map[int]Tile)
	for _, t := range tiles {
		if byNumber[t.Number] == nil {
			byNumber[t.Number] = make(map[Color]Tile)
		}
		if _, ok := byNumber[t.Number][t.Color]; !ok {
			byNumber[t.Number][t.Color] = t
		}
		if byColor[t.Color] == nil {
			byColor[t.Color] = make(map[int]Tile)
		}
		if _, ok := byColor[t.Color][t.Number]; !ok {
			byColor[t.Color][t.Number] = t
		}
	}

	var groups []Group

	// Sets: same number, pairwise distinct colors, optionally one joker
	// standing in for a missing color.
	for number := 1; number <= NumbersPerColor; number++ {
		colors := byNumber[number]
		if colors == nil {
			continue
		}
		reps := make([]Tile, 0, len(groupColors))
		for _, c := range groupColors {
			if t, ok := colors[c]; ok {
				reps = append(reps, t)
			}
		}
		for _, target := range []int{3, 4} {
			for _, need := range []int{0, 1} {
				k := target - need
				if need > jokerCount || k < 2 || k > len(reps) {
					continue
				}
				for _, combo := range combinations(reps, k) {
					groups = append(groups, Group{Kind: GroupSet, Tiles: combo, JokersNeeded: need})
				}
			}
		}
	}

	// Runs: same color, consecutive window with no wraparound, optionally
	// one joker filling the single missing number.
	for _, color := range groupColors {
		numbers := byColor[color]
		if numbers == nil {
			continue
		}
		for _, target := range []int{3, 4} {
			for start := 1; start+target-1 <= NumbersPerColor; start++ {
				present := make([]Tile, 0, target)
				for n := start; n < start+target; n++ {
					if t, ok := numbers[n]; ok {
						present = append(present, t)
					}
				}
				need := target - len(present)
				if need > 1 || need > jokerCount {
					continue
				}
				groups = append(groups, Group{Kind: GroupRun, Tiles: present, JokersNeeded: need})
			}
		}
	}

	return dedupGroups(groups)
}

func dedupGroups(groups []Group) []Group {
	seen := make(map[string]struct{}, len(groups))
	out := groups[:0]
	for _, g := range groups {
		k := g.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, g)
	}
	return out
}

// combinations returns every k-subset of reps in input order.
func combinations(reps []Tile, k int) [][]Tile {
	var out [][]Tile
	var pick func(start int, cur []Tile)
	pick = func(start int, cur []Tile) {
		if len(cur) == k {
			out = append(out, append([]Tile(nil), cur...))
			return
		}
		for i := start; i <= len(reps)-(k-len(cur)); i++ {
			pick(i+1, append(cur, reps[i]))
		}
	}
	pick(0, nil)
	return out
}
