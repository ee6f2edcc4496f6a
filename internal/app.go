// Package internal provides the App struct that wires all components of
// the pomo timer together and initializes the CLI layer.
package internal

import (
	"fmt"
	"time"

	"pomo/internal/cli"
	"pomo/internal/core"
	"pomo/internal/notify"
	"pomo/internal/storage"
	"pomo/pkg/models"
)

// drainTimeout bounds how long shutdown waits for the final bell.
const drainTimeout = 3 * time.Second

// App holds all service dependencies for the pomo timer.
type App struct {
	Home string

	// Configuration
	ConfigMgr core.ConfigurationManager
	Cfg       *models.Config

	// Storage layer
	History storage.HistoryLog

	// Announcements
	Player    *notify.SoundPlayer
	Announcer *notify.Announcer

	// Core services
	Clock  core.Clock
	Engine core.CountdownEngine
	Sched  core.Scheduler
}

// NewApp creates and wires all components of the pomo timer. home is the
// pomo home directory where config, history, and assets live.
func NewApp(home string) (*App, error) {
	app := &App{Home: home}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(home)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	app.Cfg = cfg

	// --- Storage layer ---
	app.History = storage.NewHistoryLog(home)

	// --- Announcements ---
	app.Player = notify.NewSoundPlayer(home)
	app.Announcer = notify.NewAnnouncer(cfg.Notifications, app.Player)

	// --- Core services ---
	app.Clock = core.NewSystemClock()
	renderer := cli.NewRenderer()
	app.Engine = core.NewCountdownEngine(app.Clock, renderer, app.Announcer, app.History)
	app.Sched = core.NewScheduler(app.Engine, renderer, cli.NewPrompter(), cfg.Timer)

	// --- Wire CLI package-level variables ---
	cli.Home = home
	cli.Cfg = app.Cfg
	cli.Engine = app.Engine
	cli.Sched = app.Sched
	cli.History = app.History

	return app, nil
}

// Close waits briefly for in-flight alert playback so the final bell is
// audible before the process exits.
func (a *App) Close() {
	a.Player.Drain(drainTimeout)
}
