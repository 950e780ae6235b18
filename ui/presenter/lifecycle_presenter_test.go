package presenter

import (
	"path/filepath"
	"testing"

	"github.com/jangho/subcrop-go/config"
	"github.com/jangho/subcrop-go/domain/geometry"
)

type fakeEditor struct {
	restored int
	cleared  int
}

func (f *fakeEditor) Restore() { f.restored++ }
func (f *fakeEditor) Clear()   { f.cleared++ }

func TestLifecycle_FrameLoadAndResizeRestore(t *testing.T) {
	editor := &fakeEditor{}
	p := NewLifecyclePresenter(editor, &fakeFields{}, config.DefaultConfig(), "", testLogger)
	p.FrameLoaded()
	p.ViewportResized()
	if editor.restored != 2 {
		t.Fatalf("expected 2 restores, got %d", editor.restored)
	}
}

func TestLifecycle_RestoreFromConfigSeedsRaw(t *testing.T) {
	editor := &fakeEditor{}
	fields := &fakeFields{}
	cfg := config.DefaultConfig()
	cfg.RoiX, cfg.RoiY, cfg.RoiW, cfg.RoiH = 40, 20, 80, 30
	p := NewLifecyclePresenter(editor, fields, cfg, "", testLogger)
	p.RestoreFromConfig()

	want := geometry.RealRect{X: 40, Y: 20, W: 80, H: 30}
	if fields.raw != want {
		t.Fatalf("expected raw seeded to %+v, got %+v", want, fields.raw)
	}
	if editor.restored != 1 {
		t.Fatalf("expected restore after seeding, got %d", editor.restored)
	}
}

func TestLifecycle_RestoreFromConfigSkipsEmptyRoi(t *testing.T) {
	editor := &fakeEditor{}
	fields := &fakeFields{}
	p := NewLifecyclePresenter(editor, fields, config.DefaultConfig(), "", testLogger)
	p.RestoreFromConfig()
	if fields.hasRaw || editor.restored != 0 {
		t.Fatalf("empty persisted roi must not seed or restore")
	}
}

func TestLifecycle_PersistWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subcrop.json")
	fields := &fakeFields{}
	fields.SetRaw(geometry.RealRect{X: 40, Y: 20, W: 80, H: 30})
	cfg := config.DefaultConfig()
	p := NewLifecyclePresenter(&fakeEditor{}, fields, cfg, path, testLogger)
	p.Persist()

	if cfg.RoiX != 40 || cfg.RoiY != 20 || cfg.RoiW != 80 || cfg.RoiH != 30 {
		t.Fatalf("config not updated: %+v", cfg)
	}
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.RoiX != 40 || loaded.RoiY != 20 || loaded.RoiW != 80 || loaded.RoiH != 30 {
		t.Fatalf("persisted roi did not round trip: %+v", loaded)
	}
}

func TestLifecycle_PersistZeroesInvalidSelection(t *testing.T) {
	fields := &fakeFields{}
	fields.SetRaw(geometry.RealRect{X: 40, Y: 20, W: 0, H: 30})
	cfg := config.DefaultConfig()
	cfg.RoiX, cfg.RoiY, cfg.RoiW, cfg.RoiH = 1, 2, 3, 4
	p := NewLifecyclePresenter(&fakeEditor{}, fields, cfg, "", testLogger)
	p.Persist()
	if cfg.RoiX != 0 || cfg.RoiY != 0 || cfg.RoiW != 0 || cfg.RoiH != 0 {
		t.Fatalf("invalid selection should persist as zero, got %+v", cfg)
	}
}
