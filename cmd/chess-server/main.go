// chess-server serves chess games over a REST API and WebSocket connections.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/server"
)

const shutdownTimeout = 5 * time.Second

func main() {
	defaults := config.NewConfig()

	addr := flag.String("addr", getenv("CHESSRULES_ADDR", defaults.Server.Addr), "Listen address")
	origins := flag.String("origins", getenv("CHESSRULES_ORIGINS", defaults.Server.AllowOrigins), "Allowed origins, comma separated")
	maxGames := flag.Int("max-games", getenvInt("CHESSRULES_MAX_GAMES", defaults.Server.MaxGames), "Maximum live games (0 = unlimited)")
	fifty := flag.Int("fifty", defaults.Rules.FiftyMoveHalfMoves, "Half-moves without capture or pawn move that draw a game")
	repetition := flag.Int("repetition", defaults.Rules.RepetitionCount, "Occurrences of a position that draw a game")
	verbosity := flag.Int("v", defaults.Verbosity, "Verbosity: 0=quiet, 1=requests and games, 2=every move")
	flag.Parse()

	cfg := config.NewConfigBuilder().
		WithAddr(*addr).
		WithAllowOrigins(*origins).
		WithMaxGames(*maxGames).
		WithFiftyMoveHalfMoves(*fifty).
		WithRepetitionCount(*repetition).
		WithVerbosity(*verbosity).
		Build()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	app := server.NewApp(cfg, server.NewGameManager(cfg))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		cfg.Logf(1, "shutting down\n")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			cfg.Logf(0, "shutdown: %v\n", err)
		}
	}()

	cfg.Logf(1, "listening on %s\n", cfg.Server.Addr)
	if err := app.Listen(cfg.Server.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
