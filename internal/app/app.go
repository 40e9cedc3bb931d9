package app

import (
	"go.uber.org/zap"

	"peerdid/internal/domain"
	"peerdid/internal/logger"
	"peerdid/internal/protocol/peerdid"
)

// App is the per-invocation context shared by CLI commands.
type App struct {
	Config   Config
	Log      *zap.Logger
	Resolver domain.DocumentResolver

	wire *Wire
}

// New builds an App. The secrets file is not touched until Wire is called.
func New(cfg Config, log *zap.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	return &App{Config: cfg, Log: log, Resolver: peerdid.NewResolver()}
}

// Wire opens the secret store on first use and returns the wired services.
func (a *App) Wire() (*Wire, error) {
	if a.wire != nil {
		return a.wire, nil
	}
	w, err := NewWire(a.Config, a.Resolver)
	if err != nil {
		return nil, err
	}
	a.Log.Debug("secrets opened", logger.Secrets(w.SecretsPath), logger.Count(len(w.Secrets.ListKIDs())))
	a.wire = w
	return w, nil
}

// Close flushes the logger.
func (a *App) Close() {
	_ = a.Log.Sync()
}
