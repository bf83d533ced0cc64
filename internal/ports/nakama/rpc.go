package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"okey/internal/app"
	"okey/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchResponse is the payload returned to clients when requesting a table with open seats.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// ScoreHandRequest is the diagnostic score_hand RPC input. The okey tile
// may be given directly or derived from the indicator.
type ScoreHandRequest struct {
	Hand      []int `json:"hand"`
	Indicator *int  `json:"indicator,omitempty"`
	Okey      *int  `json:"okey,omitempty"`
}

// ScoreHandResponse reports the best grouping found for the hand.
type ScoreHandResponse struct {
	Leftover  int        `json:"leftover"`
	DoubleRun bool       `json:"double_run"`
	Groups    [][]string `json:"groups"`
	Ungrouped []string   `json:"ungrouped"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcScoreHand, rpcScoreHand); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcSessionToken, rpcSessionToken)
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	// Find any table that is open and is our game.
	query := "+label.open:>=1 label.game:okey label.phase:lobby"

	limit := 10
	authoritative := true

	minSize := 1
	maxSize := 3 // ensure < 4 players

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("MatchList error: %v", err)
		return "", err
	}

	if len(matches) > 0 {
		resp := QuickMatchResponse{MatchID: matches[0].MatchId, IsNew: false}
		b, _ := json.Marshal(resp)
		return string(b), nil
	}

	// Create new table; seat/owner assignment happens in MatchJoin (server-authoritative).
	matchID, err := nk.MatchCreate(ctx, MatchNameOkey, map[string]interface{}{})
	if err != nil {
		logger.Error("MatchCreate error: %v", err)
		return "", err
	}

	resp := QuickMatchResponse{MatchID: matchID, IsNew: true}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

// rpcScoreHand scores an arbitrary hand against the given okey, mainly for
// client debugging and tooling. The hand must be a legal deal (14 or 15 tiles).
func rpcScoreHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req ScoreHandRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}

	jc, err := jokerContextFromRequest(req)
	if err != nil {
		return "", runtime.NewError(err.Error(), 3)
	}

	if err := domain.ValidateHand(req.Hand); err != nil {
		return "", runtime.NewError(err.Error(), 3)
	}

	result, err := domain.ScoreHand(req.Hand, jc)
	if err != nil {
		logger.Error("ScoreHand failed: %v", err)
		return "", runtime.NewError("Internal error", 13) // INTERNAL
	}

	resp := ScoreHandResponse{
		Leftover:  result.Leftover,
		DoubleRun: result.DoubleRun,
		Groups:    app.FormatGroups(result.Groups),
		Ungrouped: tileNames(result.Ungrouped),
	}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

func jokerContextFromRequest(req ScoreHandRequest) (domain.JokerContext, error) {
	if req.Indicator != nil {
		if err := domain.ValidateCode(*req.Indicator); err != nil {
			return domain.JokerContext{}, err
		}
		return domain.NewJokerContext(*req.Indicator), nil
	}
	if req.Okey != nil {
		if err := domain.ValidateCode(*req.Okey); err != nil {
			return domain.JokerContext{}, err
		}
		// Without the indicator, the fake tile cannot be promoted; it plays
		// as its printed face.
		return domain.JokerContext{
			OkeyCode:      *req.Okey,
			IndicatorCode: -1,
			FakeFaceCode:  domain.FakeOkeyFaceCode,
		}, nil
	}
	return domain.JokerContext{}, errors.New("indicator or okey is required")
}

func tileNames(tiles []domain.Tile) []string {
	if len(tiles) == 0 {
		return nil
	}
	names := make([]string, 0, len(tiles))
	for _, t := range tiles {
		names = append(names, t.String())
	}
	return names
}
