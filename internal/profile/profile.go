// Package profile appends configuration blocks to a shell profile file.
//
// Each block is guarded by a marker comment line. Appending is idempotent:
// when the marker is already present the append is skipped, so re-running
// the tool never duplicates configuration. Writes go through a temp file
// and rename so a crash mid-write can't truncate the operator's profile.
package profile

import (
	"fmt"
	"os"
	"strings"
)

// Appender appends marker-guarded blocks to a single profile file.
type Appender struct {
	path string
}

// NewAppender creates an Appender for the profile file at path. The file
// does not need to exist yet; the first append creates it.
func NewAppender(path string) *Appender {
	return &Appender{path: path}
}

// Path returns the profile file path.
func (a *Appender) Path() string {
	return a.path
}

// Marker returns the guard comment line for a named block.
func Marker(name string) string {
	return fmt.Sprintf("# ubuntu-setup: %s", name)
}

// EnsureBlock appends the block of lines under the named marker, unless the
// marker line is already present in the file. It reports whether the block
// was added.
func (a *Appender) EnsureBlock(name string, lines []string) (added bool, err error) {
	marker := Marker(name)

	data, err := os.ReadFile(a.path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read profile: %w", err)
	}
	content := string(data)

	if containsLine(content, marker) {
		return false, nil
	}

	var b strings.Builder
	b.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(marker)
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Write to temp, then rename.
	tmpPath := a.path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(b.String()), 0644); err != nil {
		return false, fmt.Errorf("failed to write profile: %w", err)
	}
	if err := os.Rename(tmpPath, a.path); err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("failed to write profile: %w", err)
	}
	return true, nil
}

func containsLine(content, want string) bool {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}
