package infra

import (
	"context"
	"sync"
)

type tokenKey struct{}

// tokenHolder lets Clear work through a context: the middleware stores one
// holder per request, and anything downstream can blank it (e.g. after the
// upstream rejects the token).
type tokenHolder struct {
	mu    sync.Mutex
	token string
}

// TokenProvider hands the upstream client the bearer token for the current
// request. The token is forwarded verbatim; this service never verifies it.
type TokenProvider interface {
	Get(ctx context.Context) string
	Clear(ctx context.Context)
}

type contextTokenProvider struct{}

func NewContextTokenProvider() TokenProvider {
	return contextTokenProvider{}
}

func (contextTokenProvider) Get(ctx context.Context) string {
	h, ok := ctx.Value(tokenKey{}).(*tokenHolder)
	if !ok {
		return ""
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.token
}

func (contextTokenProvider) Clear(ctx context.Context) {
	h, ok := ctx.Value(tokenKey{}).(*tokenHolder)
	if !ok {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
}

// WithToken stashes the request's bearer token for the upstream client.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, &tokenHolder{token: token})
}
