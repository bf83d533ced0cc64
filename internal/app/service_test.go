package app

import (
	"errors"
	"math/rand"
	"testing"

	"okey/internal/domain"
)

func TestPlayRoundDealsAndScores(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	svc := NewService(rng)

	round, evs, err := svc.PlayRound([]string{"u1", "u2", "u3", "u4"})
	if err != nil {
		t.Fatalf("play round error: %v", err)
	}

	if round.Okey != domain.OkeyFor(round.Indicator) {
		t.Fatalf("okey = %d, want %d", round.Okey, domain.OkeyFor(round.Indicator))
	}

	if len(round.Seats) != 4 {
		t.Fatalf("seats = %d, want 4", len(round.Seats))
	}
	for i, seat := range round.Seats {
		want := 14
		if i == 0 {
			want = 15
		}
		if len(seat.Hand) != want {
			t.Fatalf("seat %d hand size = %d, want %d", i, len(seat.Hand), want)
		}
		if seat.Leftover < 0 || seat.Leftover > len(seat.Hand) {
			t.Fatalf("seat %d leftover %d outside [0,%d]", i, seat.Leftover, len(seat.Hand))
		}
	}

	handEvents, scoreEvents := 0, 0
	for _, ev := range evs {
		switch ev.Kind {
		case EventHandDealt:
			handEvents++
			payload := ev.Payload.(HandDealtPayload)
			if len(ev.Recipients) != 1 || ev.Recipients[0] != payload.UserID {
				t.Fatalf("hand dealt event must target its owner, got %v", ev.Recipients)
			}
		case EventHandScored:
			scoreEvents++
		}
	}
	if handEvents != 4 || scoreEvents != 4 {
		t.Fatalf("hand events = %d, score events = %d, want 4 and 4", handEvents, scoreEvents)
	}
}

func TestPlayRoundWinnerHasMinimumLeftover(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	svc := NewService(rng)

	round, evs, err := svc.PlayRound([]string{"u1", "", "u3", "u4"})
	if err != nil {
		t.Fatalf("play round error: %v", err)
	}
	if len(round.Seats) != 3 {
		t.Fatalf("seats = %d, want 3", len(round.Seats))
	}

	winner := round.Seats[round.WinnerSeat]
	for i, seat := range round.Seats {
		if seat.Leftover < winner.Leftover {
			t.Fatalf("seat %d leftover %d beats winner's %d", i, seat.Leftover, winner.Leftover)
		}
		if seat.Leftover == winner.Leftover && i < round.WinnerSeat {
			t.Fatalf("tie must keep lowest seat, got winner index %d over %d", round.WinnerSeat, i)
		}
	}

	var ended *RoundEndedPayload
	for _, ev := range evs {
		if ev.Kind == EventRoundEnded {
			payload := ev.Payload.(RoundEndedPayload)
			ended = &payload
		}
	}
	if ended == nil {
		t.Fatal("expected round ended event")
	}
	if ended.WinnerUserID != winner.UserID || ended.Leftover != winner.Leftover {
		t.Fatalf("round ended payload %+v does not match winner %+v", ended, winner)
	}
}

func TestPlayRoundDeterministicForSeed(t *testing.T) {
	first, _, err := NewService(rand.New(rand.NewSource(99))).PlayRound([]string{"u1", "u2"})
	if err != nil {
		t.Fatalf("play round error: %v", err)
	}
	second, _, err := NewService(rand.New(rand.NewSource(99))).PlayRound([]string{"u1", "u2"})
	if err != nil {
		t.Fatalf("play round error: %v", err)
	}

	if first.Indicator != second.Indicator || first.WinnerSeat != second.WinnerSeat {
		t.Fatal("identical seeds must produce identical rounds")
	}
	for i := range first.Seats {
		if first.Seats[i].Leftover != second.Seats[i].Leftover {
			t.Fatalf("seat %d leftover differs between identical seeds", i)
		}
	}
}

func TestPlayRoundTooFewPlayers(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	if _, _, err := svc.PlayRound([]string{"u1", "", "", ""}); !errors.Is(err, ErrTooFewPlayers) {
		t.Fatalf("error = %v, want ErrTooFewPlayers", err)
	}
}

func TestFormatGroups(t *testing.T) {
	groups := []domain.Group{
		{Kind: domain.GroupRun, Tiles: []domain.Tile{
			{Number: 1, Color: domain.ColorYellow},
			{Number: 2, Color: domain.ColorYellow},
			{IsJoker: true},
		}},
	}
	got := FormatGroups(groups)
	want := []string{"yellow-1", "yellow-2", "okey"}
	if len(got) != 1 || len(got[0]) != 3 {
		t.Fatalf("formatted groups = %v", got)
	}
	for i, name := range want {
		if got[0][i] != name {
			t.Fatalf("formatted tile %d = %q, want %q", i, got[0][i], name)
		}
	}
}
