// Package notify announces interval completion through desktop
// notifications and an alert sound. Announcements are best-effort: any
// failure falls back to plain terminal output or is dropped, never
// interrupting a running timer.
package notify

import (
	"context"
	"fmt"
	"time"

	"pomo/internal/motivate"
	"pomo/pkg/models"
)

// notifyTimeout bounds how long a desktop notification attempt may take.
const notifyTimeout = 3 * time.Second

// showDesktop posts a desktop notification. It is a variable so tests can
// intercept it; the default is the platform implementation picked at
// build time.
var showDesktop = platformNotify

// Announcer signals interval completion according to the notification
// configuration.
type Announcer struct {
	desktop bool
	player  *SoundPlayer
}

// NewAnnouncer creates an Announcer honoring cfg. The player may be nil
// when no sound is available.
func NewAnnouncer(cfg models.NotificationConfig, player *SoundPlayer) *Announcer {
	a := &Announcer{desktop: cfg.Desktop}
	if cfg.Sound {
		a.player = player
	}
	return a
}

// Announce reports a finished interval. It never returns an error; a
// failed desktop notification falls back to a terminal line.
func (a *Announcer) Announce(iv models.Interval) {
	title, body := announcementText(iv)

	if a.desktop {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		err := showDesktop(ctx, title, body)
		cancel()
		if err != nil {
			// No notification daemon available; print instead.
			fmt.Printf("\n%s: %s\n", title, body)
		}
	}

	a.player.Play()
}

// announcementText builds the notification title and body for an interval.
func announcementText(iv models.Interval) (title, body string) {
	minutes := int(iv.Duration / time.Minute)
	if iv.Kind == models.KindWork {
		return "Pomodoro completed!", fmt.Sprintf("%s You completed a %d minute pomodoro for: %s",
			motivate.SuccessEmoji(), minutes, iv.Task)
	}
	return "Break ended!", fmt.Sprintf("%s Your %d minute break has ended",
		motivate.SuccessEmoji(), minutes)
}
