package config

import (
    "fmt"
    "os"
    "strconv"
    "strings"
)

// Environment variables read by Load. Nothing is written back.
const (
    EnvLogFile    = "TEXTEDIT_LOG"
    EnvTabWidth   = "TEXTEDIT_TAB_WIDTH"
    EnvDefaultExt = "TEXTEDIT_DEFAULT_EXT"
    EnvClipboard  = "TEXTEDIT_CLIPBOARD"
    EnvHistory    = "TEXTEDIT_HISTORY"
    EnvNoColor    = "NO_COLOR"
)

// Config is the runtime configuration of the editor.
type Config struct {
    LogFile      string // empty disables logging
    TabWidth     int    // cells a tab occupies on screen
    DefaultExt   string // appended by Save As when the name has none
    Clipboard    string // "system" | "memory"
    HistoryLimit int    // undo records kept per window; -1 disables undo
    NoColor      bool
}

func Default() Config {
    return Config{
        TabWidth:     4,
        DefaultExt:   ".txt",
        Clipboard:    "system",
        HistoryLimit: 1000,
    }
}

// Load builds a Config from the environment, falling back to Default for
// unset variables.
func Load() (Config, error) {
    return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
    c := Default()
    c.LogFile = strings.TrimSpace(getenv(EnvLogFile))
    c.NoColor = getenv(EnvNoColor) != ""

    if v := strings.TrimSpace(getenv(EnvTabWidth)); v != "" {
        n, err := strconv.Atoi(v)
        if err != nil || n < 1 || n > 16 {
            return c, fmt.Errorf("%s: want 1..16, got %q", EnvTabWidth, v)
        }
        c.TabWidth = n
    }
    if v := strings.TrimSpace(getenv(EnvDefaultExt)); v != "" {
        if !strings.HasPrefix(v, ".") {
            v = "." + v
        }
        c.DefaultExt = v
    }
    if v := strings.ToLower(strings.TrimSpace(getenv(EnvClipboard))); v != "" {
        if v != "system" && v != "memory" {
            return c, fmt.Errorf("%s: want system|memory, got %q", EnvClipboard, v)
        }
        c.Clipboard = v
    }
    if v := strings.TrimSpace(getenv(EnvHistory)); v != "" {
        n, err := strconv.Atoi(v)
        if err != nil || n < -1 || n == 0 {
            return c, fmt.Errorf("%s: want a positive number or -1, got %q", EnvHistory, v)
        }
        c.HistoryLimit = n
    }
    return c, nil
}
