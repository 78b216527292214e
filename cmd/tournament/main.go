package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/chessbench/tourneycore/pkg/config"
	"github.com/chessbench/tourneycore/pkg/tournament"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	configFile = flag.String("config", "tournament.yaml", "Tournament configuration file (YAML)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: tournament [options]

TOURNAMENT runs a match between UCI chess engines and reports Elo and SPRT statistics.
Options:
`)
		flag.PrintDefaults()
	}
}

// Exit codes: 0 on completion or SPRT decision, 1 on invalid configuration, 2 on I/O
// failure, 130 when interrupted.
func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "tournament %v", version)

	cfg, err := config.Load(*configFile)
	if err != nil {
		logw.Errorf(ctx, "%v", err)
		os.Exit(1)
	}

	t, err := tournament.New(ctx, cfg)
	if err != nil {
		logw.Errorf(ctx, "%v", err)
		if errors.Is(err, config.ErrConfig) {
			os.Exit(1)
		}
		os.Exit(2)
	}

	var interrupted atomic.Bool
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logw.Infof(ctx, "Interrupted; stopping tournament")
		interrupted.Store(true)
		t.Stop()
	}()

	if err := t.Run(ctx); err != nil {
		os.Exit(2)
	}
	if interrupted.Load() {
		os.Exit(130)
	}
}
