package main

import (
	"context"
	"errors"
	"log"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/gridnav/game/loader"
	"github.com/wricardo/gridnav/game/simulation"
)

var errNoScript = errors.New("no script given: use --script, or both --start and --moves")

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "apply a movement script to a map",
		UsageText: "gridnav run --map FILE [--script FILE] [--start X,Y] [--moves NSEW] [--json] [--render]\n\n   pass --moves \"\" for an empty movement sequence",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "map",
				Aliases:   []string{"m"},
				Usage:     "grid map file",
				Sources:   cli.EnvVars("GRIDNAV_MAP"),
				TakesFile: true,
				Required:  true,
			},
			&cli.StringFlag{
				Name:      "script",
				Aliases:   []string{"s"},
				Usage:     "script file: start position line, then movement line",
				Sources:   cli.EnvVars("GRIDNAV_SCRIPT"),
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "start",
				Usage: "start position as x,y (overrides the script)",
			},
			&cli.StringFlag{
				Name:  "moves",
				Usage: "movement sequence of N, S, E, W (overrides the script); --moves \"\" applies none",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the full run as JSON instead of positions",
			},
			&cli.BoolFlag{
				Name:  "render",
				Usage: "draw the map with the agent's final position",
			},
		},
		Action: runAction,
	}
}

// runAction loads every input before simulating, so format errors abort the
// run before the first movement.
func runAction(ctx context.Context, cmd *cli.Command) error {
	debug := cmd.Root().Bool("debug")

	grid, err := loader.LoadGrid(cmd.String("map"))
	if err != nil {
		return err
	}
	if debug {
		log.Printf("Loaded map %s (%dx%d)", cmd.String("map"), grid.Width(), grid.Height())
	}

	script, err := loadScript(cmd)
	if err != nil {
		return err
	}
	if debug {
		log.Printf("Loaded script: start %s, %d movements", script.Start, len(script.Movements))
	}

	sim, err := simulation.New(grid, script.Start)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if cmd.Bool("json") {
		sim.AddReporter(simulation.NewJSONReporter(out))
	} else {
		text := simulation.NewTextReporter(out)
		if cmd.Bool("render") {
			text.WithRender(grid)
		}
		sim.AddReporter(text)
	}

	result, err := sim.Run(ctx, script.Movements)
	if err != nil {
		return err
	}
	if debug {
		log.Printf("Run finished at %s: %d accepted, %d rejected", result.Final, result.Accepted, result.Rejected)
	}
	return nil
}

// loadScript combines the script file with the --start and --moves overrides
func loadScript(cmd *cli.Command) (loader.Script, error) {
	var script loader.Script
	haveStart, haveMoves := false, false

	if path := cmd.String("script"); path != "" {
		s, err := loader.LoadScript(path)
		if err != nil {
			return loader.Script{}, err
		}
		script = s
		haveStart, haveMoves = true, true
	}

	if cmd.IsSet("start") {
		start, err := loader.ParsePosition(cmd.String("start"))
		if err != nil {
			return loader.Script{}, err
		}
		script.Start = start
		haveStart = true
	}

	if cmd.IsSet("moves") {
		moves, err := loader.ParseMovements(cmd.String("moves"))
		if err != nil {
			return loader.Script{}, err
		}
		script.Movements = moves
		haveMoves = true
	}

	if !haveStart || !haveMoves {
		return loader.Script{}, errNoScript
	}
	return script, nil
}
