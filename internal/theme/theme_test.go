package theme_test

import (
	"context"
	"testing"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/model"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/storage"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/theme"
)

func TestLoadDefaultsToLight(t *testing.T) {
	t.Parallel()
	got, err := theme.Load(context.Background(), storage.NewMemoryKV())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != model.ThemeLight {
		t.Fatalf("expected light default, got %q", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	if err := theme.Save(ctx, kv, model.ThemeDark); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := theme.Load(ctx, kv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != model.ThemeDark {
		t.Fatalf("expected dark, got %q", got)
	}
}

func TestSaveRejectsUnknownTheme(t *testing.T) {
	t.Parallel()
	if err := theme.Save(context.Background(), storage.NewMemoryKV(), "sepia"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}
