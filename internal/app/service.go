package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"okey/internal/domain"
)

// Service contains Okey round use-cases operating on the domain engine.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrTooFewPlayers = errors.New("not enough players to deal a round")
	ErrTooManySeats  = errors.New("more seats than the deck can serve")
)

// SeatResult captures one player's dealt hand and its score.
type SeatResult struct {
	Seat      int
	UserID    string
	Hand      []int
	Leftover  int
	DoubleRun bool
	Groups    []domain.Group
}

// Round summarises a fully dealt and scored round.
type Round struct {
	Indicator  int
	Okey       int
	Seats      []SeatResult
	WinnerSeat int // index into Seats
}

// PlayRound deals and scores a complete round for the occupied seats.
// seatUserIDs is in seat order with empty strings for empty seats; the
// first occupied seat is the drawing player and receives 15 tiles.
// Emitted events carry the indicator, each hand (targeted to its owner),
// each score, and the winner.
func (s *Service) PlayRound(seatUserIDs []string) (*Round, []Event, error) {
	type seatEntry struct {
		seat   int
		userID string
	}
	var active []seatEntry
	for i, userID := range seatUserIDs {
		if userID == "" {
			continue
		}
		active = append(active, seatEntry{seat: i, userID: userID})
	}

	if len(active) < MinPlayersToStartRound {
		return nil, nil, ErrTooFewPlayers
	}
	if len(active) > MaxSeats {
		return nil, nil, ErrTooManySeats
	}

	deck := domain.ShuffleDeck(s.rng, domain.NewDeck())
	indicator := domain.DrawIndicator(s.rng, deck)
	jc := domain.NewJokerContext(indicator)

	counts := make([]int, len(active))
	for i := range counts {
		counts[i] = domain.TilesPerSeat[1]
	}
	counts[0] = domain.TilesPerSeat[0]
	hands := domain.Deal(deck, counts)

	round := &Round{Indicator: indicator, Okey: jc.OkeyCode}
	events := make([]Event, 0, 2*len(active)+2)
	events = append(events, Event{
		Kind: EventIndicatorDrawn,
		Payload: IndicatorDrawnPayload{
			Indicator:     indicator,
			Okey:          jc.OkeyCode,
			IndicatorName: domain.CodeString(indicator),
			OkeyName:      domain.CodeString(jc.OkeyCode),
		},
	})

	leftovers := make([]int, 0, len(active))
	for i, entry := range active {
		hand := hands[i]
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{UserID: entry.userID, Seat: entry.seat, Hand: hand},
			Recipients: []string{entry.userID},
		})

		if err := domain.ValidateHand(hand); err != nil {
			return nil, nil, fmt.Errorf("seat %d dealt an invalid hand: %w", entry.seat, err)
		}
		res, err := domain.ScoreHand(hand, jc)
		if err != nil {
			return nil, nil, fmt.Errorf("seat %d scoring failed: %w", entry.seat, err)
		}

		round.Seats = append(round.Seats, SeatResult{
			Seat:      entry.seat,
			UserID:    entry.userID,
			Hand:      hand,
			Leftover:  res.Leftover,
			DoubleRun: res.DoubleRun,
			Groups:    res.Groups,
		})
		leftovers = append(leftovers, res.Leftover)

		events = append(events, Event{
			Kind: EventHandScored,
			Payload: HandScoredPayload{
				UserID:    entry.userID,
				Seat:      entry.seat,
				Leftover:  res.Leftover,
				DoubleRun: res.DoubleRun,
				Groups:    FormatGroups(res.Groups),
			},
		})
	}

	round.WinnerSeat = domain.ClosestToWin(leftovers)
	winner := round.Seats[round.WinnerSeat]
	events = append(events, Event{
		Kind: EventRoundEnded,
		Payload: RoundEndedPayload{
			WinnerUserID: winner.UserID,
			WinnerSeat:   winner.Seat,
			Leftover:     winner.Leftover,
		},
	})

	return round, events, nil
}

// FormatGroups renders chosen groups as ordered face names for reporting.
func FormatGroups(groups []domain.Group) [][]string {
	if len(groups) == 0 {
		return nil
	}
	out := make([][]string, 0, len(groups))
	for _, g := range groups {
		names := make([]string, 0, len(g.Tiles))
		for _, t := range g.Tiles {
			names = append(names, t.String())
		}
		out = append(out, names)
	}
	return out
}
