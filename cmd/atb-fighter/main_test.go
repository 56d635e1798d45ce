package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"

	"github.com/lixenwraith/atb-fighter/config"
	"github.com/lixenwraith/atb-fighter/input"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)

	out := buf.String()
	for _, want := range []string{"atb-fighter version dev", "Commit: none", "Build date: unknown", "OS/Arch: "} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q:\n%s", want, out)
		}
	}
}

func TestBindFlagsOverridesConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	if err := rootCmd.PersistentFlags().Parse([]string{"--tick=50ms", "--consume", "--no-audio", "--log-level=debug"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	t.Cleanup(func() {
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			f.Value.Set(f.DefValue)
			f.Changed = false
		})
	})

	bindFlags(rootCmd)
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Battle.TickInterval != 50*time.Millisecond {
		t.Errorf("tick = %v, want 50ms", cfg.Battle.TickInterval)
	}
	if !cfg.Battle.ConsumeOnResolve {
		t.Error("consume flag not applied")
	}
	if cfg.AudioEnabled {
		t.Error("no-audio flag not applied")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadRegistry(t *testing.T) {
	reg, err := loadRegistry(config.Battle{TimeModBase: 1, TimeModSpread: 1})
	if err != nil {
		t.Fatalf("default roster: %v", err)
	}
	if reg.Enemy().Len() != 4 || reg.Player().Len() != 4 {
		t.Errorf("default parties = %d/%d, want 4/4", reg.Enemy().Len(), reg.Player().Len())
	}

	path := filepath.Join(t.TempDir(), "roster.yaml")
	doc := "enemies:\n  - name: Slime\n    max_health: 10\n    health: 10\nplayers:\n  - name: Hero\n    max_health: 20\n    health: 20\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	reg, err = loadRegistry(config.Battle{TimeModBase: 1, Roster: path})
	if err != nil {
		t.Fatalf("file roster: %v", err)
	}
	if reg.Enemy().Len() != 1 || reg.Player().Len() != 1 {
		t.Errorf("file parties = %d/%d, want 1/1", reg.Enemy().Len(), reg.Player().Len())
	}

	if _, err := loadRegistry(config.Battle{TimeModBase: 0}); err == nil {
		t.Error("expected error for zero time mod base")
	}
}

func TestLoadKeys(t *testing.T) {
	keys, err := loadKeys(map[string]string{"x": "confirm", "q": "none"})
	if err != nil {
		t.Fatalf("loadKeys: %v", err)
	}

	if got := keys.Translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)).Type; got != input.IntentConfirm {
		t.Errorf("x = %v, want confirm", got)
	}
	if got := keys.Translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)).Type; got != input.IntentNone {
		t.Errorf("q = %v, want unbound", got)
	}
	if got := keys.Translate(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)).Type; got != input.IntentConfirm {
		t.Errorf("enter = %v, want default confirm", got)
	}

	if _, err := loadKeys(map[string]string{"x": "jump"}); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestSetupMetrics(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		p, stop, err := setupMetrics(&config.Config{})
		if err != nil {
			t.Fatalf("setupMetrics: %v", err)
		}
		defer stop()
		if p.Enabled() {
			t.Error("provider enabled without metrics.enabled")
		}
	})

	t.Run("exports to the log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "atb.log")
		cfg := &config.Config{
			LogFile: path,
			Metrics: config.Metrics{Enabled: true, Interval: time.Hour},
		}

		p, stop, err := setupMetrics(cfg)
		if err != nil {
			t.Fatalf("setupMetrics: %v", err)
		}
		if !p.Enabled() {
			t.Fatal("provider not enabled")
		}
		counter, err := otel.Meter("atb-fighter-cmd-test").Int64Counter("atb.cmd.test")
		if err != nil {
			t.Fatal(err)
		}
		counter.Add(context.Background(), 1)
		stop()
		stop()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "atb.cmd.test") || !strings.Contains(string(data), serviceName) {
			t.Errorf("metrics file lacks service name:\n%s", data)
		}
	})

	t.Run("unwritable path", func(t *testing.T) {
		cfg := &config.Config{
			Metrics: config.Metrics{Enabled: true, File: filepath.Join(t.TempDir(), "missing", "m.log"), Interval: time.Second},
		}
		if _, _, err := setupMetrics(cfg); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}
