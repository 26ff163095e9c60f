package auth

import (
	"context"
	"fmt"
)

// OAuth providers the backend exposes redirect routes for.
var oauthProviders = map[string]bool{
	"google":   true,
	"facebook": true,
}

// ProviderRedirectURL returns the backend OAuth entry point for a provider.
func (f *Flow) ProviderRedirectURL(provider string) (string, error) {
	if !oauthProviders[provider] {
		return "", fmt.Errorf("unknown oauth provider %q", provider)
	}
	return f.api.BaseURL + "/api/auth/" + provider, nil
}

// HandleOAuthCallback is the terminal micro-flow behind /oauth-success:
// a token in the query persists and goes home; no token goes back to login.
// The same "token" key normal login uses is reused.
func (f *Flow) HandleOAuthCallback(ctx context.Context, token string) (redirect string, err error) {
	if token == "" {
		return "/login", nil
	}
	if err := f.store.Set(ctx, tokenKey, token); err != nil {
		return "", err
	}
	f.setState(StateAuthenticated)
	return "/", nil
}
