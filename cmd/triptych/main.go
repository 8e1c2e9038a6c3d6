package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/triptych/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	screen := flag.String("screen", "", "initial screen: counter, todos, profile")
	user := flag.Int64("user", 0, "profile user id to fetch")
	flag.Parse()

	code := cli.Run(flag.Args(), cli.Options{
		Screen: *screen,
		UserID: *user,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
