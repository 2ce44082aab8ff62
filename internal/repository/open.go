package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/portfolio/backend/internal/config"
)

// Open connects to the store named by cfg.URL. The backend is chosen by the
// URL scheme: postgres/postgresql, ws/wss/http/https (SurrealDB) or memory.
//
// Open always returns a usable DocumentStore. When settings are missing or
// the connection fails it returns an *UnavailableStore together with the
// *ConnectError, so the caller can log the reason and keep serving.
func Open(ctx context.Context, cfg config.DatabaseConfig) (DocumentStore, error) {
	store, err := open(ctx, cfg)
	if err != nil {
		var cerr *ConnectError
		if !errors.As(err, &cerr) {
			cerr = &ConnectError{Stage: StageConnect, Err: err}
		}
		return NewUnavailableStore(cerr), cerr
	}
	return store, nil
}

func open(ctx context.Context, cfg config.DatabaseConfig) (DocumentStore, error) {
	if !cfg.URLSet() {
		return nil, &ConnectError{Stage: StageConfig, Err: errors.New("DATABASE_URL is not set")}
	}
	if !cfg.NameSet() {
		return nil, &ConnectError{Stage: StageConfig, Err: errors.New("DATABASE_NAME is not set")}
	}

	u, err := url.Parse(strings.TrimSpace(cfg.URL))
	if err != nil {
		// url.Error embeds the raw URL, which may carry a password.
		return nil, &ConnectError{Stage: StageConfig, Err: errors.New("DATABASE_URL is not a valid URL")}
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		pool, err := NewPool(ctx, cfg)
		if err != nil {
			return nil, &ConnectError{Stage: StageConnect, Err: err}
		}
		store := NewPgDocumentStore(pool)
		if err := store.Init(ctx); err != nil {
			store.Close()
			return nil, &ConnectError{Stage: StageInit, Err: err}
		}
		return store, nil

	case "ws", "wss", "http", "https":
		store, err := OpenSurreal(ctx, cfg)
		if err != nil {
			return nil, &ConnectError{Stage: StageConnect, Err: err}
		}
		return store, nil

	case "memory":
		return NewMemoryDocumentStore(), nil

	default:
		return nil, &ConnectError{Stage: StageConfig, Err: fmt.Errorf("unsupported DATABASE_URL scheme %q", u.Scheme)}
	}
}
