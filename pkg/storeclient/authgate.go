package storeclient

import (
	"context"
	"sync"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// AuthState is the gate's view of the session.
type AuthState int

const (
	// StatePending means the persisted token has not been verified yet.
	StatePending AuthState = iota
	// StateGranted means the token was verified and the user is known.
	StateGranted
	// StateDenied means there is no valid session.
	StateDenied
)

func (s AuthState) String() string {
	switch s {
	case StateGranted:
		return "granted"
	case StateDenied:
		return "denied"
	default:
		return "pending"
	}
}

// AuthGate tracks whether the client has a valid session. It starts
// pending, verifies any persisted token against the server, and moves
// to granted or denied. Login and register move it to granted; logout
// always ends in denied even when the server call fails.
type AuthGate struct {
	client  *Client
	session *Session
	logger  zerolog.Logger

	mu    sync.RWMutex
	state AuthState
	user  *model.User
}

// NewAuthGate creates a gate over the given client and session. The
// client's token is primed from the session so the startup Verify can
// use it.
func NewAuthGate(client *Client, session *Session, logger zerolog.Logger) *AuthGate {
	client.SetToken(session.Token())
	return &AuthGate{
		client:  client,
		session: session,
		logger:  logger.With().Str("component", "auth-gate").Logger(),
		state:   StatePending,
	}
}

// State returns the current gate state.
func (g *AuthGate) State() AuthState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// User returns the verified user, or nil unless the state is granted.
func (g *AuthGate) User() *model.User {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.user
}

// Verify checks the persisted token against the server and resolves
// the pending state. With no token, or a rejected one, the gate is
// denied and the stale token dropped.
func (g *AuthGate) Verify(ctx context.Context) AuthState {
	token := g.session.Token()
	if token == "" {
		g.set(StateDenied, nil)
		return StateDenied
	}

	user, err := g.client.Me(ctx)
	if err != nil {
		g.logger.Debug().Err(err).Msg("persisted token rejected")
		g.client.SetToken("")
		if err := g.session.SetToken(""); err != nil {
			g.logger.Warn().Err(err).Msg("failed to drop stale token")
		}
		g.set(StateDenied, nil)
		return StateDenied
	}

	g.set(StateGranted, user)
	return StateGranted
}

// Login exchanges credentials for a session and opens the gate.
func (g *AuthGate) Login(ctx context.Context, email, password string) (*model.User, error) {
	resp, err := g.client.Login(ctx, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return g.accept(resp)
}

// Register creates an account and opens the gate.
func (g *AuthGate) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	resp, err := g.client.Register(ctx, model.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return g.accept(resp)
}

// Logout revokes the session server-side, best-effort, and always
// clears the local token.
func (g *AuthGate) Logout(ctx context.Context) {
	if err := g.client.Logout(ctx); err != nil {
		g.logger.Debug().Err(err).Msg("server-side logout failed")
	}

	g.client.SetToken("")
	if err := g.session.SetToken(""); err != nil {
		g.logger.Warn().Err(err).Msg("failed to clear persisted token")
	}
	g.set(StateDenied, nil)
}

func (g *AuthGate) accept(resp *model.AuthResponse) (*model.User, error) {
	g.client.SetToken(resp.Token)
	if err := g.session.SetToken(resp.Token); err != nil {
		g.logger.Warn().Err(err).Msg("failed to persist token")
	}
	g.set(StateGranted, resp.User)
	return resp.User, nil
}

func (g *AuthGate) set(state AuthState, user *model.User) {
	g.mu.Lock()
	g.state = state
	g.user = user
	g.mu.Unlock()
}
