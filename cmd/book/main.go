package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"vidar/internal/cli"
	"vidar/internal/common"
	"vidar/internal/engine"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

// book is the line-protocol harness around the matching engine: commands
// on stdin, trade lines on stdout, structured logs on stderr. The engine
// itself stays single threaded; the tomb only owns the read loop.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	eng := engine.New()
	eng.SetReporter(cli.TradeWriter{W: os.Stdout})

	t, _ := tomb.WithContext(ctx)
	t.Go(func() error {
		return run(t, eng, os.Stdin, os.Stdout)
	})

	if err := t.Wait(); err != nil {
		log.Error().Err(err).Msg("harness exited")
		os.Exit(1)
	}
}

func run(t *tomb.Tomb, eng *engine.Engine, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-t.Dying():
			return nil
		default:
		}

		line := scanner.Text()
		cmd, err := cli.Parse(line)
		if err != nil {
			if errors.Is(err, cli.ErrEmptyCommand) {
				continue
			}
			log.Error().Err(err).Str("line", line).Msg("bad command")
			continue
		}
		apply(eng, cmd, out)
	}
	return scanner.Err()
}

func apply(eng *engine.Engine, cmd cli.Command, out io.Writer) {
	switch c := cmd.(type) {
	case cli.SubmitCommand:
		// The engine logs the rejection reason itself.
		_ = eng.Submit(c.ID, c.Price, c.Quantity, c.Side)
	case cli.CancelCommand:
		_ = eng.Cancel(c.ID)
	default:
		switch cmd.GetType() {
		case cli.Match:
			eng.Match()
		case cli.Verify:
			if err := eng.VerifyIntegrity(); err != nil {
				fmt.Fprintln(out, "BOOK CORRUPT:", err)
			} else {
				fmt.Fprintln(out, "BOOK OK")
			}
		case cli.Book:
			printBook(eng, out)
		}
	}
}

// printBook renders the depth of both sides, asks first, best price first
// on each side.
func printBook(eng *engine.Engine, out io.Writer) {
	for _, side := range []common.Side{common.Sell, common.Buy} {
		for _, lv := range eng.Levels(side) {
			var qty uint32
			for _, o := range lv.Orders {
				qty += o.Quantity
			}
			fmt.Fprintf(out, "%s %d x %d (%d orders)\n",
				side, lv.Price, qty, len(lv.Orders))
		}
	}
}
