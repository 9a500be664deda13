package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"battleship/internal/ai"
	"battleship/internal/app"
	"battleship/internal/cli"
	"battleship/internal/config"
	"battleship/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	switch os.Args[1] {
	case "play":
		cmdPlay()
	case "simulate":
		cmdSimulate()
	case "serve":
		cmdServe()
	default:
		usage()
	}
}

func usage() {
	fmt.Println(`Battleship

Commands:
  play     --config game.yaml --seed N
  simulate --config game.yaml --seed N --games N
  serve    --config game.yaml --addr :8080`)
}

func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}

func newLogger(cfg *config.Config) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(cfg.Level()).With().Timestamp().Logger()
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func cmdPlay() {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	cfgPath := fs.String("config", "", "game config file (yaml)")
	seed := fs.Int64("seed", 0, "rng seed (0 = from clock)")
	_ = fs.Parse(os.Args[2:])

	cfg := loadConfig(*cfgPath)
	if *seed != 0 {
		cfg.Seed = *seed
	}
	log := newLogger(cfg)
	rng := newRNG(cfg.Seed)

	sess, err := app.NewSession(cfg.Rules(), ai.NewRandom(rng), rng, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start match")
	}
	if err := cli.Run(sess, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
}

func cmdSimulate() {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "game config file (yaml)")
	seed := fs.Int64("seed", 0, "rng seed (0 = from clock)")
	games := fs.Int("games", 1, "number of matches to simulate")
	_ = fs.Parse(os.Args[2:])

	cfg := loadConfig(*cfgPath)
	if *seed != 0 {
		cfg.Seed = *seed
	}
	log := newLogger(cfg)
	rng := newRNG(cfg.Seed)

	wins := map[string]int{}
	for i := 0; i < *games; i++ {
		res, err := app.Simulate(cfg.Rules(), ai.NewRandom(rng), ai.NewRandom(rng), rng, log)
		if err != nil {
			log.Fatal().Err(err).Msg("simulation failed")
		}
		wins[res.Winner.String()]++
		fmt.Printf("game %d: %s wins after %d shots\n", i+1, res.Winner, res.Turns)
	}
	if *games > 1 {
		fmt.Printf("totals: %v\n", wins)
	}
}

func cmdServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "", "game config file (yaml)")
	addr := fs.String("addr", "", "listen address (overrides config)")
	seed := fs.Int64("seed", 0, "rng seed (0 = from clock)")
	_ = fs.Parse(os.Args[2:])

	cfg := loadConfig(*cfgPath)
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	log := newLogger(cfg)
	rng := newRNG(cfg.Seed)

	srv, err := server.New(cfg.Rules(), rng, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start server")
	}
	log.Info().Str("addr", cfg.Server.Addr).Msg("serving")
	if err := http.ListenAndServe(cfg.Server.Addr, srv.Routes()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
