// Package cli routes subcommands to the TUI and returns exit codes.
package cli

import (
	"fmt"

	"github.com/Makepad-fr/triptych/internal/app"
	"github.com/Makepad-fr/triptych/internal/config"
	"github.com/Makepad-fr/triptych/internal/userapi"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Options tune behavior from root flags.
type Options struct {
	Screen string // initial screen override (counter, todos, profile)
	UserID int64  // profile user id override; 0 means use config
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	cmd := "ui"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "version":
		fmt.Println("triptych " + Version)
		return 0

	case "ui":
		return doUI(opt)
	}

	fail("unknown subcommand: " + cmd)
	fmt.Println()
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`triptych - three tiny screens, one state core

Usage:
  triptych [flags] [subcommand]

Subcommands:
  ui                 Run the interactive TUI (default)
  version            Print the version
  help               Show this help

Flags:
  -screen <name>     Initial screen: counter, todos, profile
  -user <id>         Profile user id to fetch

Environment:
  TRIPTYCH_API_URL, TRIPTYCH_API_TIMEOUT, TRIPTYCH_USER_ID, TRIPTYCH_SCREEN
`)
}

func doUI(opt Options) int {
	cfg, err := config.Load()
	if err != nil {
		fail("config: " + err.Error())
		return 1
	}
	screen := cfg.Screen
	if opt.Screen != "" {
		screen = opt.Screen
	}
	userID := cfg.UserID
	if opt.UserID != 0 {
		userID = opt.UserID
	}

	client := userapi.NewClient(cfg.APIURL, cfg.APITimeout)
	if err := app.Run(app.Options{
		Screen: screen,
		UserID: userID,
		Fetch:  client.FetchUser,
	}); err != nil {
		fail("tui: " + err.Error())
		return 1
	}
	return 0
}
