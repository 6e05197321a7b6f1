package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DrJuChunKoO/transpal-engine/internal/config"
	"github.com/DrJuChunKoO/transpal-engine/internal/db"
	"github.com/DrJuChunKoO/transpal-engine/internal/session"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// baseDir resolves the state directory, ~/.transpal unless overridden by
// TRANSPAL_HOME.
func baseDir() (string, error) {
	if dir := os.Getenv("TRANSPAL_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".transpal"), nil
}

func main() {
	// Handle --help/--version before DB init (no DB needed)
	if len(os.Args) < 2 || isHelpOrVersion() {
		app := newCLIApp(nil, "")
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	base, err := baseDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	database, err := db.Init(base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	cfg, err := config.Load(base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	sess, err := session.Open(database, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to restore session: %v\n", err)
		os.Exit(1)
	}

	app := newCLIApp(sess, base)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
