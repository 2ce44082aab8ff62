package service

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// Diagnostics field values.
const (
	StatusRunning      = "✅ Running"
	StatusWorking      = "✅ Connected & Working"
	StatusNotAvailable = "❌ Not Available"
	StatusErrorPrefix  = "⚠️ Connected but Error: "
	StatusSet          = "✅ Set"
	StatusNotSet       = "❌ Not Set"
	StatusConnected    = "Connected"
	StatusNotConnected = "Not Connected"
)

// StageListCollections marks a failure while listing collections on a
// connected store.
const StageListCollections = "list_collections"

const (
	maxListedCollections = 10
	maxErrorRunes        = 50
)

// DiagnosticsService reports backend and store health.
type DiagnosticsService interface {
	// Report never fails; every problem is described in the result.
	Report(ctx context.Context) model.Diagnostics
}

type diagnosticsService struct {
	store repository.DocumentStore
	db    config.DatabaseConfig
}

// NewDiagnosticsService creates a DiagnosticsService. db is only used to
// report whether the connection settings are present.
func NewDiagnosticsService(store repository.DocumentStore, db config.DatabaseConfig) DiagnosticsService {
	return &diagnosticsService{store: store, db: db}
}

func (s *diagnosticsService) Report(ctx context.Context) model.Diagnostics {
	d := model.Diagnostics{
		Backend:          StatusRunning,
		Database:         StatusNotAvailable,
		DatabaseURL:      setOrNot(s.db.URLSet()),
		DatabaseName:     setOrNot(s.db.NameSet()),
		ConnectionStatus: StatusNotConnected,
		Collections:      []string{},
	}

	names, err := s.store.ListCollections(ctx)
	switch {
	case err == nil:
		if len(names) > maxListedCollections {
			names = names[:maxListedCollections]
		}
		if names != nil {
			d.Collections = names
		}
		d.Database = StatusWorking
		d.ConnectionStatus = StatusConnected

	case errors.Is(err, repository.ErrStorageUnavailable):
		d.DatabaseError = &model.DiagnosticsReason{Stage: repository.StageConnect, Message: err.Error()}
		var cerr *repository.ConnectError
		if errors.As(err, &cerr) && cerr.Err != nil {
			d.DatabaseError.Stage = cerr.Stage
			d.DatabaseError.Message = cerr.Err.Error()
		}

	default:
		d.Database = StatusErrorPrefix + truncate(err.Error(), maxErrorRunes)
		d.DatabaseError = &model.DiagnosticsReason{Stage: StageListCollections, Message: err.Error()}
	}
	return d
}

func setOrNot(ok bool) string {
	if ok {
		return StatusSet
	}
	return StatusNotSet
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
