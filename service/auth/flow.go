package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/programmer-santosh-main/thapaelectronics/core/kvstore"
	"github.com/programmer-santosh-main/thapaelectronics/service/upstream"
)

// Flow states. submitting is transient; a failed submit of either kind
// lands back on anonymous.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateSubmitting    State = "submitting"
	StateAuthenticated State = "authenticated"
)

const (
	tokenKey = "token"
	userKey  = "user"

	msgLoginOK      = "Login successful! Redirecting..."
	msgGenericError = "Something went wrong."
	msgUnreachable  = "Server not reachable. Check backend."
)

// RedirectDelay is how long the success message shows before the client is
// sent home.
const RedirectDelay = 1200 * time.Millisecond

// Credentials is the login payload: identifier is email or contact number.
type Credentials struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// RegisterForm is the full registration payload.
type RegisterForm struct {
	Fullname string `json:"fullname"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Result is the outcome of a submit: the state the flow landed on plus the
// user-facing message.
type Result struct {
	State    State           `json:"state"`
	Message  string          `json:"message"`
	Token    string          `json:"token,omitempty"`
	User     json.RawMessage `json:"user,omitempty"`
	Redirect string          `json:"redirect,omitempty"`
}

// Flow drives anonymous → submitting → {authenticated | anonymous}.
// Only login persists a token; registration success does NOT authenticate.
type Flow struct {
	api   *upstream.Client
	store kvstore.Store

	mu    sync.Mutex
	state State
}

func NewFlow(backendURL string, store kvstore.Store) *Flow {
	return &Flow{
		api:   upstream.NewClient(backendURL),
		store: store,
		state: StateAnonymous,
	}
}

// State returns the current flow state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// Login submits credentials. On success the token and user persist under
// "token"/"user" and the flow is authenticated.
func (f *Flow) Login(ctx context.Context, creds Credentials) Result {
	f.setState(StateSubmitting)

	raw, err := f.api.PostJSON(ctx, "/api/auth/login", creds)
	if err != nil {
		f.setState(StateAnonymous)
		return failureResult(err)
	}

	var body struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Token == "" {
		f.setState(StateAnonymous)
		return Result{State: StateAnonymous, Message: msgGenericError}
	}

	if err := f.store.Set(ctx, tokenKey, body.Token); err != nil {
		f.setState(StateAnonymous)
		return Result{State: StateAnonymous, Message: msgGenericError}
	}
	if len(body.User) > 0 {
		if err := f.store.Set(ctx, userKey, body.User); err != nil {
			log.Printf("auth: persisting user failed: %v", err)
		}
	}

	f.setState(StateAuthenticated)
	return Result{
		State:    StateAuthenticated,
		Message:  msgLoginOK,
		Token:    body.Token,
		User:     body.User,
		Redirect: "/home",
	}
}

// Register submits the full form. Success does not store a token — the user
// still has to log in (asymmetry preserved on purpose).
func (f *Flow) Register(ctx context.Context, form RegisterForm) Result {
	f.setState(StateSubmitting)

	raw, err := f.api.PostJSON(ctx, "/api/auth/register", form)
	f.setState(StateAnonymous)
	if err != nil {
		return failureResult(err)
	}

	var body struct {
		Message string `json:"message"`
	}
	msg := "Registration successful. Please log in."
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		msg = body.Message
	}
	return Result{State: StateAnonymous, Message: msg}
}

// Logout clears the persisted token and user.
func (f *Flow) Logout(ctx context.Context) error {
	f.setState(StateAnonymous)
	if err := f.store.Delete(ctx, tokenKey); err != nil {
		return err
	}
	return f.store.Delete(ctx, userKey)
}

// Token returns the persisted session token, if any.
func (f *Flow) Token(ctx context.Context) (string, bool, error) {
	var token string
	ok, err := f.store.Get(ctx, tokenKey, &token)
	if err != nil || !ok || token == "" {
		return "", false, err
	}
	return token, true, nil
}

func failureResult(err error) Result {
	var upErr *upstream.Error
	switch {
	case errors.As(err, &upErr):
		msg := upErr.Message
		if msg == "" {
			msg = msgGenericError
		}
		return Result{State: StateAnonymous, Message: msg}
	case errors.Is(err, upstream.ErrUnreachable):
		return Result{State: StateAnonymous, Message: msgUnreachable}
	default:
		return Result{State: StateAnonymous, Message: msgGenericError}
	}
}
