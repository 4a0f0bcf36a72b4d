package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/KennyNova/squarzle-next/internal/engine"
	"github.com/KennyNova/squarzle-next/internal/game"
	"github.com/KennyNova/squarzle-next/internal/locale"
	"github.com/KennyNova/squarzle-next/internal/logger"
)

func main() {
	seed := flag.String("seed", "", "Map seed (random when empty)")
	logPath := flag.String("log", "", "Append logs to this file")
	flag.Parse()

	if *logPath != "" {
		f, err := logger.OpenFile(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	screen, err := game.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(screen, engine.Default, *seed, logrus.NewEntry(logger.Log))
	err = g.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(locale.Get("GOODBYE"))
}
