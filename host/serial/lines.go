package serial

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// Line is one CRLF-terminated line from the debug channel.
type Line struct {
	Text string
	Boot bool // Written during bring-up ("[BOOT] ...")
}

// ReadLines splits r into lines and sends them on out, closing out when it
// returns. With follow set, io.EOF is treated as a quiet port (tarm/serial
// reports a read timeout that way) and reading continues until ctx is
// cancelled; otherwise EOF ends the stream.
func ReadLines(ctx context.Context, r io.Reader, out chan<- Line, follow bool) error {
	defer close(out)

	br := bufio.NewReader(r)
	var partial strings.Builder
	emit := func(text string) error {
		select {
		case out <- Line{Text: text, Boot: strings.HasPrefix(text, "[BOOT]")}:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		chunk, err := br.ReadString('\n')
		partial.WriteString(chunk)
		switch {
		case err == nil:
			text := strings.TrimRight(partial.String(), "\r\n")
			partial.Reset()
			if err := emit(text); err != nil {
				return err
			}
		case errors.Is(err, io.EOF) && follow:
			continue
		case errors.Is(err, io.EOF):
			if partial.Len() > 0 {
				return emit(partial.String())
			}
			return nil
		default:
			return err
		}
	}
}
