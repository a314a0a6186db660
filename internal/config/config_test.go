package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/errors"
	"github.com/lgbarn/movecheck-go/internal/testutil"
)

// TestConfig_Defaults verifies Config has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Layout != chess.LayoutStandard {
		t.Errorf("Layout = %v, want standard", cfg.Layout)
	}
	if cfg.Render.Glyphs != GlyphsUnicode {
		t.Errorf("Render.Glyphs = %v, want unicode", cfg.Render.Glyphs)
	}
	if cfg.Render.Colour || cfg.Render.ShowBoard || cfg.Render.JSONFormat {
		t.Error("render options should be off by default")
	}
	if cfg.Suite.File != "" || cfg.Suite.Workers != 0 || cfg.Suite.FailFast {
		t.Errorf("Suite = %+v, want zero value", cfg.Suite)
	}
	testutil.AssertNoError(t, cfg.Validate(), "default config")
}

// TestConfig_Validate verifies whole-config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"defaults", NewConfig(), false},
		{"fen with standard layout", NewConfigBuilder().WithFEN(chess.StandardPlacement).Build(), false},
		{"fen with empty layout", NewConfigBuilder().WithFEN(chess.StandardPlacement).WithLayout(chess.LayoutEmpty).Build(), true},
		{"unknown layout", NewConfigBuilder().WithLayout(chess.Layout(9)).Build(), true},
		{"negative workers", NewConfigBuilder().WithWorkers(-2).Build(), true},
		{"unknown glyphs", NewConfigBuilder().WithGlyphs(GlyphSet(7)).Build(), true},
		{"negative verbosity", NewConfigBuilder().WithVerbosity(-1).Build(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

func TestParseGlyphSet(t *testing.T) {
	for _, g := range []GlyphSet{GlyphsUnicode, GlyphsLetters} {
		got, err := ParseGlyphSet(g.String())
		testutil.AssertNoError(t, err)
		if got != g {
			t.Errorf("ParseGlyphSet(%q) = %v", g.String(), got)
		}
	}
	_, err := ParseGlyphSet("emoji")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestParseLayout(t *testing.T) {
	got, err := ParseLayout("empty")
	testutil.AssertNoError(t, err)
	if got != chess.LayoutEmpty {
		t.Errorf("ParseLayout(empty) = %v", got)
	}
	_, err = ParseLayout("chess960")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestSuiteConfig_EffectiveWorkers(t *testing.T) {
	s := SuiteConfig{Workers: 3}
	if s.EffectiveWorkers() != 3 {
		t.Errorf("EffectiveWorkers() = %d, want 3", s.EffectiveWorkers())
	}
	s.Workers = 0
	if s.EffectiveWorkers() < 1 {
		t.Errorf("EffectiveWorkers() = %d, want at least 1", s.EffectiveWorkers())
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out, log := &bytes.Buffer{}, &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	var log bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&log).WithVerbosity(1).Build()

	cfg.Logf(1, "checked %d moves", 3)
	cfg.Logf(2, "hidden")

	if got := log.String(); got != "checked 3 moves\n" {
		t.Errorf("log = %q, want only the level 1 line", got)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithLayout(chess.LayoutEmpty).
		WithGlyphs(GlyphsLetters).
		WithColour(true).
		WithShowBoard(true).
		WithJSONOutput(true).
		WithSuite("cases.txt").
		WithWorkers(4).
		WithFailFast(true).
		WithOutput(&out).
		WithVerbosity(2).
		Build()

	want := Config{
		Verbosity: 2,
		Layout:    chess.LayoutEmpty,
		Render:    RenderConfig{Glyphs: GlyphsLetters, Colour: true, ShowBoard: true, JSONFormat: true},
		Suite:     SuiteConfig{File: "cases.txt", Workers: 4, FailFast: true},
	}
	got := *cfg
	got.OutputFile, got.LogFile = nil, nil
	testutil.AssertEqual(t, got, want)
	if cfg.OutputFile != &out {
		t.Error("WithOutput did not set OutputFile")
	}
}
