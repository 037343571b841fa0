package inputrc

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Config holds the process-wide settings of spec §6: the escape
// timeout, bell policy, completion auto-print threshold, the
// event-expansion toggle, and any inputrc variable (e.g.
// "comment-begin") read from the init file.
type Config struct {
	Vars map[string]interface{}

	path    string
	watcher *fsnotify.Watcher
	onChange func()
}

// Defaults returns a Config carrying spec §6's documented defaults.
func Defaults() *Config {
	return &Config{
		Vars: map[string]interface{}{
			"escape-timeout":       150,
			"nobell":               true,
			"completion-query-items": 100,
			"history-size":         0,
			"comment-begin":        "#",
		},
	}
}

// GetInt returns an integer variable, or 0 if unset/not an int.
func (c *Config) GetInt(name string) int {
	switch v := c.Vars[name].(type) {
	case int:
		return v
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

// GetBool returns a boolean variable.
func (c *Config) GetBool(name string) bool {
	switch v := c.Vars[name].(type) {
	case bool:
		return v
	case string:
		return v == "on" || v == "1" || v == "true"
	default:
		return false
	}
}

// GetString returns a string variable, or "" if unset.
func (c *Config) GetString(name string) string {
	switch v := c.Vars[name].(type) {
	case string:
		return v
	default:
		return ""
	}
}

// EscapeTimeout returns the ESC-peek timeout in milliseconds (spec §4.4
// step 4, default 150).
func (c *Config) EscapeTimeout() int {
	if n := c.GetInt("escape-timeout"); n > 0 {
		return n
	}

	return 150
}

// BellEnabled reports whether a failed command should ring the bell
// (spec §6: "inverse of the nobell property; default: bell suppressed").
func (c *Config) BellEnabled() bool {
	return !c.GetBool("nobell")
}

// AutoprintThreshold returns the completion listing threshold (spec
// §6, default 100).
func (c *Config) AutoprintThreshold() int {
	if n := c.GetInt("completion-query-items"); n > 0 {
		return n
	}

	return 100
}

// ExpandEvents reports whether history-expansion runs on accept (spec
// §6, default true).
func (c *Config) ExpandEvents() bool {
	if v, ok := c.Vars["expand-events"]; ok {
		return v == true || v == "on"
	}

	return true
}

// CommentBegin returns the configured comment prefix used by
// insert-comment, falling back to "#" (spec §4.5).
func (c *Config) CommentBegin() string {
	if s := c.GetString("comment-begin"); s != "" {
		return s
	}

	return "#"
}

// ReadFile parses an inputrc-format file into Vars and key bindings.
// Only "set variable value" lines are applied to Vars here; key
// binding lines are handled by internal/keymap's loader, which calls
// ParseBindings on the same file content.
func (c *Config) ReadFile(path string) error {
	c.path = path

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "set ") {
			fields := strings.Fields(strings.TrimPrefix(line, "set "))
			if len(fields) >= 2 {
				c.Vars[fields[0]] = strings.Join(fields[1:], " ")
			}
		}
	}

	return scanner.Err()
}

// WatchForChanges starts an fsnotify watch on the init file so that
// external edits trigger the same reload path as the explicit
// re-read-init-file command (SPEC_FULL.md domain-stack addition).
// It is a best-effort supplement: failure to start the watcher is not
// fatal, matching the teacher's general tolerance for unavailable
// optional terminal/filesystem features.
func (c *Config) WatchForChanges(onChange func()) error {
	if c.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(c.path); err != nil {
		watcher.Close()
		return err
	}

	c.watcher = watcher
	c.onChange = onChange

	go func() {
		for event := range watcher.Events {
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				_ = c.ReadFile(c.path)

				if c.onChange != nil {
					c.onChange()
				}
			}
		}
	}()

	return nil
}

// StopWatching shuts down the fsnotify watcher started by
// WatchForChanges, if any.
func (c *Config) StopWatching() {
	if c.watcher != nil {
		c.watcher.Close()
		c.watcher = nil
	}
}
