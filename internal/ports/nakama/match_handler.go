package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"okey/internal/app"
	"okey/internal/config"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// Phase represents the lifecycle stage of an Okey table.
type Phase string

const (
	// PhaseLobby is the pre-round state where players can join.
	PhaseLobby Phase = "lobby"
	// PhaseIntermission is the cooldown after a round's results are broadcast.
	PhaseIntermission Phase = "intermission"
)

// Label is advertised through the match listing so quick_match can filter
// on open seats.
type Label struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// MatchState holds the authoritative runtime state for one Okey table.
type MatchState struct {
	Phase       Phase
	Seats       [4]string // index => userId or ""
	OwnerUserID string
	Presences   map[string]runtime.Presence

	App       *app.Service
	RoundID   string     // uuid of the round in play or just played
	LastRound *app.Round // results of the most recent round

	Tick       int64
	ResumeTick int64 // when intermission returns to lobby
}

func (ms *MatchState) openSeatCount() int {
	n := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			n++
		}
	}
	return n
}

func lowestAvailableSeat(seats *[4]string) int {
	for i := range seats {
		if seats[i] == "" {
			return i
		}
	}
	return -1
}

func findFirstOccupiedSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" {
			return i
		}
	}
	return -1
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit boots a new table in the lobby phase.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	state := &MatchState{
		Phase:     PhaseLobby,
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(nil),
	}

	tickRate := 1
	return state, tickRate, buildLabel(state)
}

// MatchJoinAttempt validates whether a presence is allowed to join.
func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {

	s, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Rejoins keep their seat; new joins need an open one.
	for _, seat := range s.Seats {
		if seat == presence.GetUserId() {
			return state, true, ""
		}
	}
	if s.openSeatCount() <= 0 {
		return state, false, "match_full"
	}

	return state, true, ""
}

// MatchJoin seats new presences and assigns ownership.
func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		uid := p.GetUserId()
		s.Presences[uid] = p

		rejoined := false
		for _, seat := range s.Seats {
			if seat == uid {
				rejoined = true
				break
			}
		}
		if rejoined {
			continue
		}

		seat := lowestAvailableSeat(&s.Seats)
		if seat < 0 {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", uid)
			continue
		}
		s.Seats[seat] = uid

		if s.OwnerUserID == "" {
			s.OwnerUserID = uid
		}

		evt, _ := json.Marshal(map[string]any{
			"user_id": uid,
			"seat":    seat,
			"owner":   uid == s.OwnerUserID,
		})
		_ = dispatcher.BroadcastMessage(OpPlayerJoined, evt, nil, nil, true)
	}

	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	return s
}

// MatchLeave frees seats and reassigns ownership; an empty table terminates.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		uid := p.GetUserId()
		delete(s.Presences, uid)

		for i, seat := range s.Seats {
			if seat == uid {
				s.Seats[i] = ""
				logger.Debug("MatchLeave: User %s left, seat %d freed.", uid, i)
				break
			}
		}

		if s.OwnerUserID == uid {
			s.OwnerUserID = ""
			if owner := findFirstOccupiedSeat(s.Seats[:]); owner >= 0 {
				s.OwnerUserID = s.Seats[owner]
				logger.Debug("MatchLeave: Owner reassigned to seat %d.", owner)
			}
		}

		evt, _ := json.Marshal(map[string]any{"user_id": uid})
		_ = dispatcher.BroadcastMessage(OpPlayerLeft, evt, nil, nil, true)
	}

	if findFirstOccupiedSeat(s.Seats[:]) < 0 {
		logger.Info("MatchLeave: Terminating empty table.")
		return nil
	}

	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	return s
}

// MatchLoop processes start requests and moves intermission back to lobby.
func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {

	s, ok := state.(*MatchState)
	if !ok {
		return state
	}
	s.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartRound:
			mh.handleStartRound(s, dispatcher, logger, msg.GetUserId())
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if s.Phase == PhaseIntermission && tick >= s.ResumeTick {
		s.Phase = PhaseLobby
		_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	}

	return s
}

// MatchTerminate runs on match shutdown; nothing to persist.
func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	return state
}

// MatchSignal handles out-of-band signals; unused.
func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

func (mh *matchHandler) handleStartRound(s *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, uid string) {
	if s.Phase != PhaseLobby {
		logger.Warn("StartRound: Table not in lobby (phase=%s).", s.Phase)
		return
	}
	if uid != s.OwnerUserID {
		logger.Warn("StartRound: User %s tried to start a round but is not owner.", uid)
		return
	}

	occupied := len(s.Seats) - s.openSeatCount()
	if occupied < config.GetMinPlayers() {
		logger.Warn("StartRound: Cannot deal with %d players. Need at least %d.", occupied, config.GetMinPlayers())
		return
	}

	s.RoundID = uuid.NewString()
	round, events, err := s.App.PlayRound(s.Seats[:])
	if err != nil {
		logger.Error("StartRound: Failed to play round: %v", err)
		return
	}
	s.LastRound = round

	for _, ev := range events {
		mh.broadcastEvent(s, dispatcher, logger, ev)
	}

	delay := 5
	if cfg := config.GetGameConfig(); cfg != nil && cfg.RoundDelaySeconds > 0 {
		delay = cfg.RoundDelaySeconds
	}
	s.Phase = PhaseIntermission
	s.ResumeTick = s.Tick + int64(delay)
	_ = dispatcher.MatchLabelUpdate(buildLabel(s))

	winner := round.Seats[round.WinnerSeat]
	logger.Info("StartRound: Round %s scored, winner seat %d with %d leftover.", s.RoundID, winner.Seat, winner.Leftover)
}

// broadcastEvent maps an app event to its opcode and sends it, honoring
// targeted recipients.
func (mh *matchHandler) broadcastEvent(s *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, ok := opCodeForEvent(ev.Kind)
	if !ok {
		logger.Warn("broadcastEvent: No opcode for event kind %s.", ev.Kind)
		return
	}

	data, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("broadcastEvent: Failed to marshal %s payload: %v", ev.Kind, err)
		return
	}

	var targets []runtime.Presence
	for _, uid := range ev.Recipients {
		if p, exists := s.Presences[uid]; exists {
			targets = append(targets, p)
		}
	}
	if len(ev.Recipients) > 0 && len(targets) == 0 {
		// Every recipient is offline; a targeted event must not leak to the table.
		return
	}

	_ = dispatcher.BroadcastMessage(opCode, data, targets, nil, true)
}

func opCodeForEvent(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventIndicatorDrawn:
		return OpIndicatorDrawn, true
	case app.EventHandDealt:
		return OpHandDealt, true
	case app.EventHandScored:
		return OpHandScored, true
	case app.EventRoundEnded:
		return OpRoundEnded, true
	default:
		return 0, false
	}
}

func buildLabel(s *MatchState) string {
	b, _ := json.Marshal(Label{Open: s.openSeatCount(), Game: "okey", Phase: string(s.Phase)})
	return string(b)
}
