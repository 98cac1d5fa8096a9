package fittracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/app"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/dateutil"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/model"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/storage"
	"github.com/takayoshiwatanabe-create/fittracker-mobile/internal/workout"
)

func resolveDataPath() (string, error) {
	if dataPath != "" {
		return dataPath, nil
	}
	if cfg.Data.Path != "" {
		return cfg.Data.Path, nil
	}
	return app.DefaultDataPath()
}

func withKV(run func(ctx context.Context, kv storage.KV) error) error {
	path, err := resolveDataPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDataDir(path); err != nil {
		return err
	}
	kv, err := storage.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer kv.Close()
	return run(context.Background(), kv)
}

// withStore opens storage, loads the workout collection, runs the command
// body, then flushes pending writes. A load or flush-time save failure
// fails the command.
func withStore(run func(ctx context.Context, store *workout.Store) error) error {
	return withKV(func(ctx context.Context, kv storage.KV) error {
		store := workout.NewStore(kv)
		defer store.Close()

		store.Load(ctx)
		if state := store.Snapshot(); state.Err != "" {
			return errors.New(state.Err)
		}
		if err := run(ctx, store); err != nil {
			return err
		}
		store.Flush()
		if state := store.Snapshot(); state.Err != "" {
			return errors.New(state.Err)
		}
		return nil
	})
}

// parseWorkoutInput validates the add/update flag values. Duration and type
// are checked here, at the input boundary; the store never sees invalid
// records.
func parseWorkoutInput(date, workoutType string, duration int, notes string) (model.WorkoutInput, error) {
	if date == "" {
		date = dateutil.Today()
	}
	if _, err := dateutil.ParseDate(date); err != nil {
		return model.WorkoutInput{}, err
	}
	workoutType = strings.ToLower(strings.TrimSpace(workoutType))
	if !model.ValidWorkoutType(workoutType) {
		labels := make([]string, 0, len(model.WorkoutTypeOptions))
		for _, opt := range model.WorkoutTypeOptions {
			labels = append(labels, opt.Label)
		}
		return model.WorkoutInput{}, fmt.Errorf("invalid workout type %q (use one of: %s)", workoutType, strings.Join(labels, ", "))
	}
	if duration <= 0 {
		return model.WorkoutInput{}, fmt.Errorf("duration must be > 0 minutes")
	}
	return model.WorkoutInput{
		Date:     date,
		Type:     workoutType,
		Duration: duration,
		Notes:    strings.TrimSpace(notes),
	}, nil
}

// parseMonthArg parses a YYYY-MM value, defaulting to the current month.
func parseMonthArg(value string) (year, month int, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		now := time.Now()
		return now.Year(), int(now.Month()), nil
	}
	t, err := time.ParseInLocation("2006-01", value, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", value)
	}
	return t.Year(), int(t.Month()), nil
}
