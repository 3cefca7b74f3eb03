package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"

	"github.com/xiam/lambda"
)

const (
	appName    = "lambda"
	promptMain = "==> "
)

var helpText = `
Stepper commands:
  <enter>, step   Perform one reduction step
  undo            Go back one step
  print           Print the current term
  reset           Restore the initial term
  quit            Exit the stepper
`

func main() {
	app := &cli.App{
		Name:      appName,
		Usage:     "reduce an untyped lambda calculus expression",
		ArgsUsage: "EXPRESSION",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "step through the reduction interactively",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one expression argument", 2)
			}

			ev, err := lambda.New(c.Args().First())
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			if c.Bool("interactive") {
				return runStepper(ev)
			}
			return runBatch(ev)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runBatch reduces the expression to normal form and prints it once.
func runBatch(ev *lambda.Evaluator) error {
	if _, err := ev.ReduceAll(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Println(ev.PrettyPrint())
	return nil
}

// runStepper drives the evaluator one reduction at a time. A cursor over the
// evaluator's snapshot history supports undo without re-deriving any tree.
func runStepper(ev *lambda.Evaluator) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	fmt.Println(ev.PrettyPrint())

	cursor := 0
	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		ln.AppendHistory(line)

		switch line {
		case "", "step":
			if cursor < len(ev.History())-1 {
				// Stepping forward over known history.
				cursor++
				ev.SetAST(ev.Snapshot(cursor))
				fmt.Println(ev.PrettyPrint())
				continue
			}

			changed, err := ev.ReduceOnce()
			if err != nil {
				// Eval errors end the session.
				fmt.Fprintln(os.Stderr, err)
				return cli.Exit("", 1)
			}
			if !changed {
				fmt.Println("normal form reached")
				continue
			}
			cursor++
			fmt.Println(ev.Message())
			fmt.Println(ev.PrettyPrint())

		case "undo":
			if cursor == 0 {
				fmt.Println("already at the initial term")
				continue
			}
			cursor--
			ev.SetAST(ev.Snapshot(cursor))
			fmt.Println(ev.PrettyPrint())

		case "print":
			fmt.Println(ev.PrettyPrint())

		case "reset":
			cursor = 0
			ev.SetAST(ev.Snapshot(0))
			fmt.Println(ev.PrettyPrint())

		case "quit", "exit":
			return nil

		case "help", "?":
			fmt.Print(helpText)

		default:
			fmt.Printf("unknown command %q (try help)\n", line)
		}
	}
}
