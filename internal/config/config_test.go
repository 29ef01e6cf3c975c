package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Substeps <= 0 {
		t.Error("substeps should be positive")
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
}

func TestAllPresetsBuild(t *testing.T) {
	names := ListPresets()
	sort.Strings(names)
	if len(names) != 6 {
		t.Fatalf("expected 6 presets, got %d: %v", len(names), names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			cfg := GetPreset(name)
			if cfg == nil {
				t.Fatal("preset missing")
			}
			eng, _, err := Build(cfg)
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			// Presets must survive a full episode without blowing up.
			states := eng.Bodies()
			for i := 0; i < cfg.Steps; i++ {
				states = eng.Step()
			}
			for _, s := range states {
				if !s.Position.IsValid() || !s.Velocity.IsValid() {
					t.Errorf("body %d diverged: %+v", s.Index, s)
				}
			}
		})
	}
}

func TestGetPresetUnknown(t *testing.T) {
	if GetPreset("warp-drive") != nil {
		t.Error("unknown preset should return nil")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := GetPreset("star-system")
	path := filepath.Join(t.TempDir(), "scene.yaml")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Name != cfg.Name || loaded.Dt != cfg.Dt || loaded.Substeps != cfg.Substeps {
		t.Errorf("round trip changed scalars: %+v vs %+v", loaded, cfg)
	}
	if len(loaded.Forces) != len(cfg.Forces) || loaded.Forces[0].G != cfg.Forces[0].G {
		t.Error("round trip changed forces")
	}
	if len(loaded.Bodies) != 1 || !loaded.Bodies[0].Fixed {
		t.Error("round trip lost the fixed center body")
	}

	if _, _, err := Build(loaded); err != nil {
		t.Errorf("reloaded config failed to build: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestBuildRejectsUnknownForceType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scene = &SceneConfig{NumBodies: 2}
	cfg.Forces = []ForceConfig{{Type: "antigravity"}}

	if _, _, err := Build(cfg); err == nil {
		t.Error("unknown force type should fail")
	}
}

func TestBuildRejectsUnknownGraph(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scene = &SceneConfig{NumBodies: 2}
	cfg.Forces = []ForceConfig{{Type: "spring", Graph: "hypercube", K: 1, RestLength: 1}}

	if _, _, err := Build(cfg); err == nil {
		t.Error("unknown graph generator should fail")
	}
}

func TestBuildRejectsEmptyScene(t *testing.T) {
	if _, _, err := Build(DefaultConfig()); err == nil {
		t.Error("scene without bodies should fail")
	}
}

func TestBuildExplicitBodiesPrecedeScene(t *testing.T) {
	cfg := GetPreset("star-system")
	eng, _, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}

	bodies := eng.Bodies()
	if len(bodies) != 5 {
		t.Fatalf("expected 5 bodies (center + 4 satellites), got %d", len(bodies))
	}
	if !bodies[0].Fixed {
		t.Error("explicit center body should hold index 0")
	}
}

func TestBuildDeterministicPerSeed(t *testing.T) {
	cfg := GetPreset("springs")
	engA, _, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	engB, _, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}

	a := engA.Bodies()
	b := engB.Bodies()
	for i := range a {
		if a[i].Position != b[i].Position || a[i].Mass != b[i].Mass {
			t.Fatalf("body %d differs across identical builds", i)
		}
	}
}
