package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pomo/internal/notify"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install pomo into ~/.local/bin",
	Long: `Copy the running pomo binary into ~/.local/bin and place the alert
sound next to it when one can be found. Reports whether ~/.local/bin is
on your PATH; no shell profile is modified.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating running binary: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	binDir := filepath.Join(home, ".local", "bin")

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}

	dest := filepath.Join(binDir, filepath.Base(exe))
	if err := copyFile(exe, dest, 0o755); err != nil {
		return fmt.Errorf("installing binary: %w", err)
	}
	fmt.Printf("Installed %s\n", dest)

	// The copied binary looks for its bell under <binary dir>/assets.
	if src, ok := notify.FindAlertSound(Home); ok {
		assetDest := filepath.Join(binDir, "assets", filepath.Base(src))
		if err := os.MkdirAll(filepath.Dir(assetDest), 0o755); err == nil {
			if err := copyFile(src, assetDest, 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: copying alert sound: %v\n", err)
			} else {
				fmt.Printf("Installed %s\n", assetDest)
			}
		}
	} else {
		fmt.Println("No alert.wav found to install; the timer will run silently.")
	}

	if dirOnPath(binDir) {
		fmt.Printf("%s is on your PATH. You're all set!\n", binDir)
	} else {
		fmt.Printf("%s is not on your PATH. Add it with:\n\n  export PATH=\"$PATH:%s\"\n", binDir, binDir)
	}
	return nil
}

// copyFile copies src to dst with the given permissions, truncating any
// existing file.
func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return out.Close()
}

// dirOnPath reports whether dir appears in $PATH.
func dirOnPath(dir string) bool {
	for _, entry := range filepath.SplitList(os.Getenv("PATH")) {
		if entry == dir {
			return true
		}
	}
	return false
}
