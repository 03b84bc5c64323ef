// REPL binary for interactively building statements and inspecting the
// rendered SQL and parameter map.
//
// Configuration (env vars):
//
//	FLUENTSQL_STRATEGY=mybatis3|named|atnamed|positional  (optional, default mybatis3)
//
// Usage:
//
//	go run ./cmd/repl
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
)

func main() {
	sess := NewSession(os.Stdout)

	if name := strings.TrimSpace(strings.ToLower(os.Getenv("FLUENTSQL_STRATEGY"))); name != "" {
		if err := sess.cmdStrategy(name); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, defaulting to mybatis3\n", err)
		} else {
			fmt.Printf("[Config] Strategy: %s (from FLUENTSQL_STRATEGY)\n", name)
		}
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "fluentsql> ",
		HistoryFile:     historyPath(),
		HistoryLimit:    500,
		AutoComplete:    &replCompleter{sess: sess},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	fmt.Println()
	fmt.Println("Fluentsql REPL — type 'help' for commands, 'exit' to quit")
	fmt.Println()

	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			break
		}
		if err := sess.Execute(line); err != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
	}
	fmt.Println()
}

// historyPath returns ~/.fluentsql_history, or "" when the home directory
// cannot be determined (history is then disabled).
func historyPath() string {
	u, err := user.Current()
	if err != nil || u.HomeDir == "" {
		return ""
	}
	return filepath.Join(u.HomeDir, ".fluentsql_history")
}
