package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/atb-fighter/atb"
	"github.com/lixenwraith/atb-fighter/audio"
	"github.com/lixenwraith/atb-fighter/combat"
	"github.com/lixenwraith/atb-fighter/config"
	"github.com/lixenwraith/atb-fighter/engine"
	"github.com/lixenwraith/atb-fighter/input"
	"github.com/lixenwraith/atb-fighter/logging"
	"github.com/lixenwraith/atb-fighter/render"
	"github.com/lixenwraith/atb-fighter/roster"
	"github.com/lixenwraith/atb-fighter/telemetry"
)

const serviceName = "atb-fighter"

func runBattle(cmd *cobra.Command, _ []string) error {
	bindFlags(cmd)

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	crash := newCrashReporter(os.Stderr, os.Exit)
	crash.onExit(func() { _ = closer.Close() })

	provider, stopMetrics, err := setupMetrics(cfg)
	if err != nil {
		return err
	}
	defer stopMetrics()
	crash.onExit(stopMetrics)
	if provider.Enabled() {
		logger.Info().Str("file", cfg.MetricsPath()).Dur("interval", cfg.Metrics.Interval).Msg("Metrics export enabled")
	}

	reg, err := loadRegistry(cfg.Battle)
	if err != nil {
		return err
	}

	keys, err := loadKeys(cfg.Keys)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	// Runs before the metric and log cleanups on a crash
	crash.onExit(screen.Fini)

	defer func() {
		if r := recover(); r != nil {
			crash.report(r)
		}
	}()

	var cues engine.Cues
	if cfg.AudioEnabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
		} else {
			defer sm.Cleanup()
			crash.onExit(sm.Cleanup)
			cues = sm
		}
	}

	queue, err := engine.NewActionQueue(0, logger)
	if err != nil {
		return err
	}
	defer queue.Close()

	driver, err := engine.NewDriver(&engine.DriverConfig{
		Registry:         reg,
		Renderer:         render.NewRenderer(screen),
		Sink:             queue,
		Cues:             cues,
		Logger:           logger,
		ConsumeOnResolve: cfg.Battle.ConsumeOnResolve,
	})
	if err != nil {
		return err
	}

	poller, err := engine.NewPoller(&engine.PollerConfig{
		Screen:       screen,
		Keys:         keys,
		TickInterval: cfg.Battle.TickInterval,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	poller.SetCrashHandler(crash.report)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go consumeActions(ctx, queue, logger)
	poller.Start(ctx)

	logger.Info().
		Int("enemies", reg.Enemy().Len()).
		Int("players", reg.Player().Len()).
		Msg("Battle started")

	if err := driver.Run(ctx, poller.Events()); err != nil {
		return err
	}

	if pending := queue.Drain(); len(pending) > 0 {
		logger.Warn().Int("pending", len(pending)).Msg("Unconsumed actions discarded")
	}
	logger.Info().Msg("Battle ended")
	return nil
}

// setupMetrics installs the meter provider when metrics are enabled
// The returned stop function flushes the exporter and closes its file
func setupMetrics(cfg *config.Config) (*telemetry.Provider, func(), error) {
	if !cfg.Metrics.Enabled {
		p, err := telemetry.New(telemetry.Config{})
		return p, func() {}, err
	}

	file, err := os.OpenFile(cfg.MetricsPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening metrics file: %w", err)
	}

	p, err := telemetry.New(telemetry.Config{
		Enabled:     true,
		ServiceName: serviceName,
		Interval:    cfg.Metrics.Interval,
		Writer:      file,
	})
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	stopped := false
	stop := func() {
		if stopped {
			return
		}
		stopped = true
		_ = p.Shutdown(context.Background())
		_ = file.Close()
	}
	return p, stop, nil
}

// loadRegistry builds both parties from the configured roster or the built-in line-up
func loadRegistry(battle config.Battle) (*combat.Registry, error) {
	mods, err := atb.NewTimeModSource(dice.DefaultRoller, battle.TimeModBase, battle.TimeModSpread)
	if err != nil {
		return nil, err
	}
	if battle.Roster == "" {
		return roster.Default(mods)
	}
	return roster.Load(battle.Roster, mods)
}

// loadKeys layers the configured bindings over the default table
func loadKeys(bindings map[string]string) (*input.KeyTable, error) {
	override, err := input.LoadKeyConfig(bindings)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// consumeActions stands in for the battle resolver and records each queued action
func consumeActions(ctx context.Context, queue *engine.ActionQueue, logger zerolog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case action, ok := <-queue.Actions():
			if !ok {
				return
			}
			logger.Debug().
				Str("actor_id", action.ActorID).
				Str("target_id", action.TargetID).
				Float64("time_cost", action.Variant.TimeCost).
				Msg("Action consumed")
		}
	}
}
