// Package theme persists the appearance preference. It shares the storage
// layer with the workout store but is otherwise independent of it.
package theme

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/model"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/storage"
)

// Load returns the stored theme preference, defaulting to light when none
// was saved yet.
func Load(ctx context.Context, kv storage.KV) (string, error) {
	raw, found, err := kv.Get(ctx, storage.ThemeKey)
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}
	if !found {
		return model.ThemeLight, nil
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("parse stored theme: %w", err)
	}
	if value != model.ThemeLight && value != model.ThemeDark {
		return model.ThemeLight, nil
	}
	return value, nil
}

// Save stores the theme preference.
func Save(ctx context.Context, kv storage.KV, value string) error {
	if value != model.ThemeLight && value != model.ThemeDark {
		return fmt.Errorf("invalid theme %q (use %s or %s)", value, model.ThemeLight, model.ThemeDark)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	if err := kv.Set(ctx, storage.ThemeKey, raw); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
