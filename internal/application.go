package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DANI05132/conecta4/internal/config"
	"github.com/DANI05132/conecta4/internal/connectfour"
	"github.com/DANI05132/conecta4/internal/usecase"
	"github.com/DANI05132/conecta4/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	term, err := console.New(conf.PlayerOneMark, conf.PlayerTwoMark)
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}
	defer term.Close()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
		term.Interrupt()
	}()

	game := connectfour.NewGame()
	loop := usecase.NewTurnLoop(logger, game, term, conf.PlayerOneMark, conf.PlayerTwoMark)

	log.Info("Starting game")

	if err = loop.Run(ctx); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	log.Info("Game finished", "status", game.Status, "moves", game.Moves)

	return nil
}
