package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// platformNotify shows a tray balloon via PowerShell, the closest thing
// to a native notification without a packaged app identity.
func platformNotify(ctx context.Context, title, body string) error {
	script := fmt.Sprintf(`
Add-Type -AssemblyName System.Windows.Forms
Add-Type -AssemblyName System.Drawing
$icon = New-Object System.Windows.Forms.NotifyIcon
$icon.Icon = [System.Drawing.SystemIcons]::Information
$icon.Visible = $true
$icon.ShowBalloonTip(5000, '%s', '%s', [System.Windows.Forms.ToolTipIcon]::Info)
Start-Sleep -Seconds 1
$icon.Dispose()
`, escapePowerShell(title), escapePowerShell(body))
	return exec.CommandContext(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script).Run()
}

func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
