package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

const stdinPath = "-"

var errNoPath = errors.New("path is required")

// readDocument reads a file, or stdin when path is "-".
func readDocument(path string, stdin io.Reader) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// validatePath accepts "-" or an existing regular file.
func validatePath(input string) error {
	path := strings.TrimSpace(input)
	if path == "" {
		return errNoPath
	}
	if path == stdinPath {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// resolvePath returns value when set. Otherwise it asks on the terminal, or
// fails when stdin is not interactive.
func resolvePath(value, flag, label string) (string, error) {
	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}
	if !isTerminal(os.Stdin) {
		return "", fmt.Errorf("--%s is required", flag)
	}

	prompt := promptui.Prompt{
		Label:    label,
		Validate: validatePath,
	}
	path, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
