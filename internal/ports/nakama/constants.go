package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a table with open seats.
	RpcQuickMatch = "quick_match"

	// RpcScoreHand is the diagnostic RPC id for scoring an arbitrary hand.
	RpcScoreHand = "score_hand"

	// RpcSessionToken is the RPC id issuing signed table-session tokens.
	RpcSessionToken = "session_token"

	// MatchNameOkey is the authoritative match handler name registered with Nakama.
	MatchNameOkey = "okey_match"

	// MatchLabelKey_OpenSeats is the label key advertising open seats for match listing queries.
	MatchLabelKey_OpenSeats = "open"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartRound int64 = 1

	// Server -> Client events
	OpPlayerJoined   int64 = 101
	OpPlayerLeft     int64 = 102
	OpIndicatorDrawn int64 = 103
	OpHandDealt      int64 = 104 // sent privately
	OpHandScored     int64 = 105
	OpRoundEnded     int64 = 106
)
