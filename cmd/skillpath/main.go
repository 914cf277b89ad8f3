package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/skillpath/internal/api"
	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/calendar"
	"github.com/alexanderramin/skillpath/internal/cli"
	"github.com/alexanderramin/skillpath/internal/config"
	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/goals"
	"github.com/alexanderramin/skillpath/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		if msg := cli.ErrorMessage(err); msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessions := repository.NewSQLiteAuthSessionRepo(database)

	var (
		apiObserver      api.Observer      = api.NoopObserver{}
		goalObserver     goals.Observer    = goals.NoopObserver{}
		calendarObserver calendar.Observer = calendar.NoopObserver{}
	)
	if cfg.LogCalls {
		apiObserver = api.NewLogObserver(os.Stderr)
		goalObserver = goals.NewLogObserver(os.Stderr)
		calendarObserver = calendar.NewLogObserver(os.Stderr)
	}

	client := api.NewClient(cfg, sessions, apiObserver)

	a := &cli.App{
		Config:           cfg,
		Backend:          client,
		Sessions:         app.NewSessionService(client, sessions),
		GoalObserver:     goalObserver,
		CalendarObserver: calendarObserver,
	}

	// Prompts and spinners only when attached to a terminal.
	a.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(a).ExecuteContext(ctx)
}
