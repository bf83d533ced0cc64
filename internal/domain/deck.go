package domain

import "math/rand"

// DeckSize is the full Okey tile count: two copies of each regular tile
// plus two fake okey tiles.
const DeckSize = 106

// TilesPerSeat lists how many tiles each seat receives in a four-player
// round. Seat 0 is the drawing player and holds the extra tile.
var TilesPerSeat = []int{15, 14, 14, 14}

// NewDeck returns the ordered 106-tile deck: codes 0..52, each twice.
func NewDeck() []int {
	deck := make([]int, 0, DeckSize)
	for code := 0; code <= FakeOkeyCode; code++ {
		deck = append(deck, code, code)
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(rng *rand.Rand, deck []int) []int {
	out := make([]int, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// DrawIndicator picks a random regular tile from the deck to act as the
// round's indicator. Fake okey tiles are never indicators.
func DrawIndicator(rng *rand.Rand, deck []int) int {
	valid := make([]int, 0, len(deck))
	for _, code := range deck {
		if code != FakeOkeyCode {
			valid = append(valid, code)
		}
	}
	return valid[rng.Intn(len(valid))]
}

// OkeyFor returns the code of the tile acting as the round's joker: same
// color as the indicator, next number up, wrapping 13 back to 1.
func OkeyFor(indicator int) int {
	next := NumberOf(indicator) + 1
	if next > NumbersPerColor {
		next = 1
	}
	return CodeOf(ColorOf(indicator), next)
}

// Deal slices consecutive hands off the top of the deck, one per entry in
// counts, and returns them in seat order.
func Deal(deck []int, counts []int) [][]int {
	hands := make([][]int, 0, len(counts))
	start := 0
	for _, n := range counts {
		hands = append(hands, append([]int(nil), deck[start:start+n]...))
		start += n
	}
	return hands
}
