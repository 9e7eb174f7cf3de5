// Command towersim runs the Arcanum tower economy headless.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/talgya/arcanum/internal/engine"
	"github.com/talgya/arcanum/internal/persistence"
	"github.com/talgya/arcanum/internal/view"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		seed     = flag.Int64("seed", 42, "simulation seed")
		speed    = flag.Float64("speed", 1.0, "tick speed multiplier (0 = paused)")
		saveDir  = flag.String("savedir", "", "save directory (default: per-user config dir)")
		interval = flag.Duration("interval", time.Second, "simulation seconds per tick")
	)
	flag.Parse()

	slog.Info("Arcanum — Tower Economy Simulation")

	savePath := persistence.SavePath()
	chroniclePath := filepath.Join(filepath.Dir(savePath), "arcanum_chronicle.db")
	if *saveDir != "" {
		os.MkdirAll(*saveDir, 0o755)
		savePath = filepath.Join(*saveDir, "arcanum_save.json")
		chroniclePath = filepath.Join(*saveDir, "arcanum_chronicle.db")
	}

	// ── Chronicle ─────────────────────────────────────────────────────
	chronicle, err := persistence.OpenChronicle(chroniclePath)
	if err != nil {
		slog.Error("failed to open chronicle", "error", err)
		os.Exit(1)
	}
	defer chronicle.Close()
	slog.Info("chronicle opened", "path", chroniclePath)

	// ── Session: load save + offline gains, or start fresh ────────────
	session := engine.NewSession(*seed)

	if data := persistence.ReadFile(savePath); data != nil {
		gains := persistence.CalculateOfflineGains(data, time.Now())
		persistence.Restore(data, session)
		persistence.ApplyOfflineGains(gains, session)
		slog.Info("save restored",
			"truths", session.TotalTruths,
			"afp", session.FocusPoints,
			"transcendences", session.Prestige.TotalTranscendences,
		)
		if summary := view.OfflineSummary(gains); summary != "" {
			fmt.Println(summary)
		}
	} else {
		slog.Info("no save found, starting fresh", "path", savePath)
	}

	// ── Engine ────────────────────────────────────────────────────────
	eng := engine.NewEngine(session)
	eng.Speed = *speed
	eng.Interval = *interval

	eng.OnTick = func(s *engine.Session) {
		truths := s.DrainEvents()
		for _, t := range truths {
			slog.Info("truth", "text", t.Text, "index", t.Index)
		}
		if err := chronicle.AppendTruths(s.Ambience.SimTime(), truths); err != nil {
			slog.Error("chronicle append failed", "error", err)
		}
	}
	eng.OnAutosave = func(s *engine.Session) {
		if err := persistence.WriteFile(savePath, persistence.Capture(s)); err != nil {
			slog.Error("autosave failed", "error", err)
		}
	}

	// ── Start ─────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	hud := view.BuildHUD(session)
	fmt.Printf("The tower wakes: %s wisdom, %s AFP, %d truths known.\n",
		hud.Wisdom, hud.FocusPoints, hud.TotalTruths)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run()

	// Final save on shutdown.
	slog.Info("final save...")
	if err := persistence.WriteFile(savePath, persistence.Capture(session)); err != nil {
		slog.Error("final save failed", "error", err)
	}

	fmt.Println("Simulation stopped. Tower state saved.")
}
