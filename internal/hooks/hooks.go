// Package hooks invokes optional user shell scripts on organiser events.
//
// A hook lives at ~/.config/ambrogio/hooks/<feature>/<event>.sh. A missing
// script is a no-op; a failing script is reported but never treated as an
// error by the caller's flow.
package hooks

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"
)

func defaultHooksDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ambrogio", "hooks"), nil
}

// Run executes the hook script for feature/event if one exists.
func Run(feature, event string) error {
	base, err := defaultHooksDir()
	if err != nil {
		return err
	}
	return runWithBase(base, feature, event)
}

func runWithBase(base, feature, event string) error {
	path := filepath.Join(base, feature, event+".sh")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command("sh", path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if stdout.Len() > 0 {
		fmt.Print(stdout.String())
	}
	if stderr.Len() > 0 {
		fmt.Fprint(os.Stderr, stderr.String())
	}

	if err != nil {
		log.Warn("hook exited with error", "hook", filepath.Join(feature, event+".sh"), "err", err)
	}
	return nil
}
