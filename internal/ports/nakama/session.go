package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"okey/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// sessionService is package-level so tests can inject a fixed-secret instance.
var sessionService *app.SessionService

// rpcSessionToken issues a signed token binding the caller to a seat and
// round, so a client dropping its socket can prove its place on rejoin.
// Payload: {"seat": 0-3, "round_id": "..."}
func rpcSessionToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("User required", 16) // UNAUTHENTICATED
	}

	var req struct {
		Seat    int    `json:"seat"`
		RoundID string `json:"round_id"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}
	if req.Seat < 0 || req.Seat >= app.MaxSeats {
		return "", runtime.NewError("Seat out of range", 3)
	}

	svc := sessionService
	if svc == nil {
		env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
		secret := env["session_secret"]
		issuer := env["session_issuer"]
		if secret == "" || issuer == "" {
			secret = "test-secret"
			issuer = "okey-server"
			logger.Warn("Session credentials missing from env, using test defaults.")
		}
		svc = app.NewSessionService(secret, issuer)
	}

	token, err := svc.GenerateToken(userID, req.Seat, req.RoundID)
	if err != nil {
		logger.Error("Failed to generate session token: %v", err)
		return "", runtime.NewError("Internal error", 13) // INTERNAL
	}

	res := map[string]string{
		"token": token,
	}
	b, _ := json.Marshal(res)
	return string(b), nil
}
