package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// platformNotify posts a notification through Notification Center via
// osascript.
func platformNotify(ctx context.Context, title, body string) error {
	script := fmt.Sprintf("display notification \"%s\" with title \"%s\"",
		escapeAppleScript(body), escapeAppleScript(title))
	return exec.CommandContext(ctx, "osascript", "-e", script).Run()
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
