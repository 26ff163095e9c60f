package graphql

import (
	"context"
	"encoding/json"
	"net/http"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeySessionID contextKey = "sessionID"

// SessionIDFromContext returns the session ID for the current request.
func SessionIDFromContext(ctx context.Context) string {
	if v := ctx.Value(CtxKeySessionID); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// WithSessionID attaches the session ID to context.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeySessionID, id)
}

// Session id for the current request.
// Resolved from: X-Session-Id header > __Session query param > JSON variables.__Session
const (
	HeaderSession     = "X-Session-Id"
	QueryParamSession = "__Session"
	VarSession        = "__Session"
)

// GetSessionID extracts the session id from a request.
// Priority: 1) X-Session-Id header, 2) __Session query param, 3) JSON body variables.__Session
func GetSessionID(r *http.Request) string {
	if h := r.Header.Get(HeaderSession); h != "" {
		return h
	}
	if q := r.URL.Query().Get(QueryParamSession); q != "" {
		return q
	}
	// JSON payload variables are read in the handler and passed via context
	return ""
}

// ParseSessionFromVariables parses variables from the JSON body for the session id.
func ParseSessionFromVariables(body []byte) (string, bool) {
	var payload struct {
		Variables map[string]interface{} `json:"variables"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Variables == nil {
		return "", false
	}
	if v, ok := payload.Variables[VarSession]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}
