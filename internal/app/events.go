package app

// EventKind identifies emitted round events for Nakama dispatch.
type EventKind string

const (
	EventIndicatorDrawn EventKind = "indicator_drawn"
	EventHandDealt      EventKind = "hand_dealt"
	EventHandScored     EventKind = "hand_scored"
	EventRoundEnded     EventKind = "round_ended"
)

// Event is a round event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type IndicatorDrawnPayload struct {
	Indicator     int    `json:"indicator"`
	Okey          int    `json:"okey"`
	IndicatorName string `json:"indicator_name"`
	OkeyName      string `json:"okey_name"`
}

type HandDealtPayload struct {
	UserID string `json:"user_id"`
	Seat   int    `json:"seat"`
	Hand   []int  `json:"hand"`
}

type HandScoredPayload struct {
	UserID    string     `json:"user_id"`
	Seat      int        `json:"seat"`
	Leftover  int        `json:"leftover"`
	DoubleRun bool       `json:"double_run"`
	Groups    [][]string `json:"groups,omitempty"`
}

type RoundEndedPayload struct {
	WinnerUserID string `json:"winner_user_id"`
	WinnerSeat   int    `json:"winner_seat"`
	Leftover     int    `json:"leftover"`
}
