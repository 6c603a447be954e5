// Copyright
// SPDX-License-Identifier: MIT
// textedit: a minimal terminal text editor with multiple windows, undo/redo and a system clipboard
package main

import (
    "fmt"
    "io"
    "log"
    "os"

    tea "github.com/charmbracelet/bubbletea"

    "textedit/internal/config"
    "textedit/internal/tui"
)

const Version = "0.1.0"

func main() {
    path := ""
    if len(os.Args) > 1 {
        switch os.Args[1] {
        case "-h", "--help":
            usage()
            return
        case "-v", "--version":
            fmt.Println("textedit", Version)
            return
        }
        path = os.Args[1]
    }

    c, err := config.Load()
    if err != nil {
        fmt.Fprintln(os.Stderr, "config:", err)
        os.Exit(2)
    }

    // The terminal belongs to the UI; diagnostics go to the log file or nowhere.
    if c.LogFile != "" {
        f, err := tea.LogToFile(c.LogFile, "textedit")
        if err != nil {
            fmt.Fprintln(os.Stderr, "log file:", err)
            os.Exit(2)
        }
        defer f.Close()
    } else {
        log.SetOutput(io.Discard)
    }

    if err := tui.Run(path, c); err != nil {
        log.Printf("tui: %v", err)
        fmt.Fprintln(os.Stderr, "textedit:", err)
        os.Exit(1)
    }
}

func usage() {
    fmt.Println(`textedit ` + Version + `
A minimal terminal text editor.
USAGE
  textedit [path]
KEYS
  ctrl+n new window   ctrl+o open    ctrl+s save     ctrl+q exit
  ctrl+z undo         ctrl+y redo    ctrl+x cut      ctrl+c copy    ctrl+v paste
  f1 help             f6 next window f10 menu
ENVIRONMENT
  TEXTEDIT_LOG          append diagnostics to this file
  TEXTEDIT_TAB_WIDTH    tab stop width (default 4)
  TEXTEDIT_DEFAULT_EXT  extension added by Save As (default .txt)
  TEXTEDIT_CLIPBOARD    system | memory (default system)
  TEXTEDIT_HISTORY      undo steps kept, -1 disables (default 1000)
  NO_COLOR              disable colors`)
}
