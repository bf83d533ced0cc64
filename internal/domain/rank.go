package domain

// ClosestToWin returns the index of the hand closest to winning: the
// minimum leftover count, ties broken by the lowest index. Returns -1 for
// an empty slice.
func ClosestToWin(leftovers []int) int {
	winner := -1
	for i, n := range leftovers {
		if winner < 0 || n < leftovers[winner] {
			winner = i
		}
	}
	return winner
}
