package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionInfo is what the session endpoint reports about the stored token.
// Claims are decoded without signature verification: the upstream backend is
// the issuer and sole verifier; we only surface expiry and subject.
type SessionInfo struct {
	Authenticated bool      `json:"authenticated"`
	Subject       string    `json:"subject,omitempty"`
	ExpiresAt     time.Time `json:"expiresAt,omitempty"`
	Expired       bool      `json:"expired,omitempty"`
}

// Session inspects the persisted token, if any.
func (f *Flow) Session(ctx context.Context) (SessionInfo, error) {
	token, ok, err := f.Token(ctx)
	if err != nil || !ok {
		return SessionInfo{}, err
	}

	info := SessionInfo{Authenticated: true}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		// Opaque (non-JWT) tokens are still valid sessions.
		return info, nil
	}
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
		info.Expired = time.Now().After(exp.Time)
	}
	return info, nil
}
