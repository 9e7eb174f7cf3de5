// Command ponderbot soaks the economy with an automated player: it
// runs a session at high speed and lets the autoplayer chase progress,
// logging a progress line at a fixed cadence.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talgya/arcanum/internal/autoplay"
	"github.com/talgya/arcanum/internal/engine"
	"github.com/talgya/arcanum/internal/view"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		seed    = flag.Int64("seed", 7, "simulation seed")
		speed   = flag.Float64("speed", 50.0, "tick speed multiplier")
		report  = flag.Duration("report", 30*time.Second, "wall-clock progress report cadence")
		actEach = flag.Int("act-every", 2, "autoplayer acts once per this many ticks")
	)
	flag.Parse()

	slog.Info("Ponderbot — automated tower soak")

	session := engine.NewSession(*seed)
	player := autoplay.NewPlayer(session)

	eng := engine.NewEngine(session)
	eng.Speed = *speed

	var tick int
	lastReport := time.Now()
	eng.OnTick = func(s *engine.Session) {
		tick++
		if tick%*actEach == 0 {
			player.Cycle()
		}
		s.DrainEvents()

		if time.Since(lastReport) >= *report {
			lastReport = time.Now()
			hud := view.BuildHUD(s)
			slog.Info("progress",
				"sim_secs", int(s.Ambience.SimTime()),
				"wisdom", hud.Wisdom,
				"rate", hud.PassiveRate,
				"afp", hud.FocusPoints,
				"truths", hud.TotalTruths,
				"insight", hud.Insight,
				"transcendences", s.Prestige.TotalTranscendences,
				"school", hud.School,
				"layer", hud.Layer,
			)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	fmt.Println("Ponderbot running... (Ctrl+C to stop)")
	eng.Run()

	hud := view.BuildHUD(session)
	fmt.Printf("Soak finished: %d truths, %s AFP, %d transcendences.\n",
		hud.TotalTruths, hud.FocusPoints, session.Prestige.TotalTranscendences)
}
