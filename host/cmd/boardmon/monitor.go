package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/mattn/go-tty"
	"github.com/spf13/cobra"

	"boardup/host/serial"
)

var (
	monitorOpts = struct {
		device   string
		baud     int
		bootOnly bool
	}{}

	monitorCmd = &cobra.Command{
		Use:   "monitor",
		Short: "Stream a board's debug channel",
		Long:  "Open the debug serial port and print every line the board transmits. Press q to quit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonitor(cmd.Context())
		},
	}
)

func init() {
	monitorCmd.Flags().StringVarP(&monitorOpts.device, "device", "d", "/dev/ttyUSB0", "Serial device path")
	monitorCmd.Flags().IntVarP(&monitorOpts.baud, "baud", "b", serial.DebugBaud, "Baud rate")
	monitorCmd.Flags().BoolVar(&monitorOpts.bootOnly, "boot", false, "Only print bring-up ([BOOT]) lines")
}

func runMonitor(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt)
	defer cancel()

	cfg := serial.DefaultConfig(monitorOpts.device)
	cfg.Baud = monitorOpts.baud
	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()
	if err := port.Flush(); err != nil {
		log.Printf("flush %s: %v", cfg.Device, err)
	}

	go watchQuitKey(cancel)

	lines := make(chan serial.Line, 16)
	errc := make(chan error, 1)
	go func() { errc <- serial.ReadLines(ctx, port, lines, true) }()

	fmt.Fprintf(os.Stderr, "monitoring %s at %d baud, q quits\n", cfg.Device, cfg.Baud)
	for l := range lines {
		if monitorOpts.bootOnly && !l.Boot {
			continue
		}
		fmt.Println(l.Text)
	}

	if err := <-errc; err != nil && ctx.Err() == nil {
		return fmt.Errorf("read %s: %w", cfg.Device, err)
	}
	return nil
}

// watchQuitKey cancels the monitor when q is pressed on the controlling
// terminal. Without a terminal only Ctrl-C stops it.
func watchQuitKey(cancel context.CancelFunc) {
	t, err := tty.Open()
	if err != nil {
		return
	}
	defer t.Close()
	for {
		r, err := t.ReadRune()
		if err != nil {
			return
		}
		if r == 'q' || r == 'Q' {
			cancel()
			return
		}
	}
}
