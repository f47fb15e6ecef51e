package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"boardup/boards"
	"boardup/core"
	"boardup/sim"
)

var (
	simOpts = struct {
		board   string
		profile string
		trace   bool
	}{}

	simCmd = &cobra.Command{
		Use:   "sim",
		Short: "Run bring-up on a simulated board",
		Long:  "Run board bring-up against a simulated HAL and print the register-level operation trace and the debug channel output.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := Profile{Board: simOpts.board}
			if simOpts.profile != "" {
				var err error
				if p, err = LoadProfile(simOpts.profile); err != nil {
					return err
				}
				if cmd.Flags().Changed("board") {
					p.Board = simOpts.board
				}
			}
			return runSim(cmd.OutOrStdout(), p, simOpts.trace)
		},
	}
)

func init() {
	simCmd.Flags().StringVar(&simOpts.board, "board", "discovery", "Board variant (see boardmon boards)")
	simCmd.Flags().StringVarP(&simOpts.profile, "profile", "p", "", "YAML simulation profile")
	simCmd.Flags().BoolVarP(&simOpts.trace, "trace", "t", true, "Print the operation trace")
}

// runSim runs one bring-up and reports it to w. A failed bring-up is
// returned as an error after the report is written.
func runSim(w io.Writer, p Profile, trace bool) error {
	b, opts, err := p.Resolve()
	if err != nil {
		return err
	}

	core.ResetConstants()
	core.ClearStepRing()
	core.SetDebugWriter(nil)

	board := sim.New(opts)
	h, setupErr := core.BoardSetup(core.TakePeripherals(board.HAL()), b)

	if trace {
		fmt.Fprintln(w, "# operations")
		for _, op := range board.Trace.Ops() {
			fmt.Fprintln(w, op.String())
		}
	}

	fmt.Fprintln(w, "# steps")
	var steps strings.Builder
	core.SetDebugWriter(func(s string) { steps.WriteString(s + "\n") })
	core.DumpStepRing()
	core.SetDebugWriter(nil)
	fmt.Fprint(w, steps.String())

	if out := board.Serial.Output(); out != "" {
		fmt.Fprintln(w, "# debug channel")
		fmt.Fprint(w, strings.ReplaceAll(out, "\r\n", "\n"))
	}
	for _, f := range board.Trace.Faults() {
		fmt.Fprintln(w, "FAULT:", f)
	}

	if setupErr != nil {
		return fmt.Errorf("bring-up failed at %s: %w", h.Status, setupErr)
	}
	if len(board.Trace.Faults()) > 0 {
		return fmt.Errorf("bring-up completed with %d faults", len(board.Trace.Faults()))
	}
	if !board.IRQ.Masked() {
		return fmt.Errorf("interrupts unmasked at hand-off")
	}
	fmt.Fprintf(w, "# hand-off: %s clock=%d reload=%d masked\n", b.Name, h.ClockHz, h.Tick.Reload)
	return nil
}

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List board variants",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range boards.Names() {
			b, _ := boards.Lookup(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s port=%s baud=%d clock=%d\n",
				name, b.Serial.Port, b.Serial.Baud, b.Clock.TargetHz)
		}
	},
}
