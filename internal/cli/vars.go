package cli

import (
	"pomo/internal/core"
	"pomo/internal/storage"
	"pomo/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	// Home is the pomo home directory holding config, history, and assets.
	Home string

	// Cfg is the resolved configuration; flag values override it per command.
	Cfg *models.Config

	// Engine runs a single interval countdown.
	Engine core.CountdownEngine

	// Sched executes plans and the interactive cycle.
	Sched core.Scheduler

	// History reads and appends the completion log.
	History storage.HistoryLog
)
