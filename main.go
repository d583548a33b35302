// Command gridnav simulates an agent walking a grid map under a movement script.
//
// It supports three commands:
//  1. "run" – loads a map and a script, applies every movement and prints the
//     agent's position after each one
//  2. "validate" – checks map files (or directories of map files) and prints a report
//  3. "version" – prints version information
//
// Default map and script paths can be supplied through GRIDNAV_MAP and
// GRIDNAV_SCRIPT, either in the environment or in a .env file.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "gridnav"
)

// newApp builds the command tree. It is separate from main so tests can run
// commands against their own writers.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "simulate an agent moving across a grid map",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			runCommand(),
			validateCommand(),
			{
				Name:  "version",
				Usage: "show version information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintf(cmd.Root().Writer, "%s v%s\n", AppName, Version)
					return err
				},
			},
		},
	}
}

// main loads .env, wires signal handling and runs the selected command.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
