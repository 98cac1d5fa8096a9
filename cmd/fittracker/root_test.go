package fittracker

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func resetFlagValues() {
	dataPath = ""
	addDate, addType, addDuration, addNotes = "", "", 0, ""
	updateDate, updateType, updateDuration, updateNotes = "", "", 0, ""
	listDate, listMonth = "", ""
	calendarMonth = ""
	statsWeekDate, statsMonthValue = "", ""
	exportOut, importIn, importMerge = "", "", false
	resetYes = false
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlagValues()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func testDataPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "fittracker.db")
}

func TestRootHelp(t *testing.T) {
	out, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if out == "" {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := testDataPath(t)
	for i := 0; i < 2; i++ {
		if _, err := runCommand(t, "--data", path, "init"); err != nil {
			t.Fatalf("init run %d failed: %v", i+1, err)
		}
	}
}

func TestAddAndListFlow(t *testing.T) {
	path := testDataPath(t)

	out, err := runCommand(t, "--data", path, "add", "--date", "2024-01-15", "--type", "running", "--duration", "30", "--notes", "easy pace")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "running") || !strings.Contains(out, "2024-01-15") {
		t.Fatalf("unexpected add output: %q", out)
	}

	out, err = runCommand(t, "--data", path, "list", "--date", "2024-01-15")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "running") || !strings.Contains(out, "easy pace") {
		t.Fatalf("list missing record: %q", out)
	}

	out, err = runCommand(t, "--data", path, "list", "--date", "2024-01-16")
	if err != nil {
		t.Fatalf("list empty date: %v", err)
	}
	if !strings.Contains(out, "No workouts recorded.") {
		t.Fatalf("expected empty list message, got %q", out)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	path := testDataPath(t)

	if _, err := runCommand(t, "--data", path, "add", "--type", "running", "--duration", "0"); err == nil {
		t.Fatalf("expected error for zero duration")
	}
	if _, err := runCommand(t, "--data", path, "add", "--type", "parkour", "--duration", "30"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
	if _, err := runCommand(t, "--data", path, "add", "--type", "running", "--duration", "30", "--date", "2024-13-01"); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

func TestUpdateAndDeleteFlow(t *testing.T) {
	path := testDataPath(t)

	out, err := runCommand(t, "--data", path, "add", "--date", "2024-01-15", "--type", "yoga", "--duration", "20")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	idLine := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "ID: ") {
			idLine = strings.TrimPrefix(line, "ID: ")
		}
	}
	if idLine == "" {
		t.Fatalf("no id in add output: %q", out)
	}

	out, err = runCommand(t, "--data", path, "update", idLine, "--date", "2024-01-16", "--type", "walking", "--duration", "40")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !strings.Contains(out, "Updated workout") {
		t.Fatalf("unexpected update output: %q", out)
	}

	out, err = runCommand(t, "--data", path, "update", "missing-id", "--date", "2024-01-16", "--type", "walking", "--duration", "40")
	if err != nil {
		t.Fatalf("update unknown id must not fail: %v", err)
	}
	if !strings.Contains(out, "No workout with id") {
		t.Fatalf("expected no-op message, got %q", out)
	}

	out, err = runCommand(t, "--data", path, "delete", idLine)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(out, "Deleted workout") {
		t.Fatalf("unexpected delete output: %q", out)
	}

	out, err = runCommand(t, "--data", path, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "No workouts recorded.") {
		t.Fatalf("expected empty collection, got %q", out)
	}
}

func TestStatsMonth(t *testing.T) {
	path := testDataPath(t)

	seed := [][]string{
		{"add", "--date", "2024-01-15", "--type", "running", "--duration", "30"},
		{"add", "--date", "2024-01-15", "--type", "strength", "--duration", "45"},
		{"add", "--date", "2024-02-01", "--type", "cycling", "--duration", "20"},
	}
	for _, args := range seed {
		if _, err := runCommand(t, append([]string{"--data", path}, args...)...); err != nil {
			t.Fatalf("seed %v: %v", args, err)
		}
	}

	out, err := runCommand(t, "--data", path, "stats", "month", "--month", "2024-01")
	if err != nil {
		t.Fatalf("stats month: %v", err)
	}
	if !strings.Contains(out, "Total time:   1 hours 15 minutes") {
		t.Fatalf("unexpected total: %q", out)
	}
	if !strings.Contains(out, "Sessions:     2") {
		t.Fatalf("unexpected sessions: %q", out)
	}
	if !strings.Contains(out, "Average time: 38 minutes") {
		t.Fatalf("unexpected average: %q", out)
	}
	if !strings.Contains(out, "Active days:  1") {
		t.Fatalf("unexpected active days: %q", out)
	}

	out, err = runCommand(t, "--data", path, "stats", "month", "--month", "2024-03")
	if err != nil {
		t.Fatalf("stats empty month: %v", err)
	}
	if !strings.Contains(out, "No workouts recorded for 2024-03.") {
		t.Fatalf("expected empty month message, got %q", out)
	}
}

func TestStatsWeek(t *testing.T) {
	path := testDataPath(t)

	if _, err := runCommand(t, "--data", path, "add", "--date", "2024-01-15", "--type", "running", "--duration", "45"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := runCommand(t, "--data", path, "stats", "week", "--date", "2024-01-18")
	if err != nil {
		t.Fatalf("stats week: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 7 {
		t.Fatalf("expected at least 7 weekday rows, got %q", out)
	}
	wantLabels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, label := range wantLabels {
		if !strings.HasPrefix(lines[i], label) {
			t.Fatalf("row %d should start with %s: %q", i, label, lines[i])
		}
	}
	if !strings.Contains(lines[0], "45") || !strings.Contains(lines[0], "#") {
		t.Fatalf("Monday row should show the bar: %q", lines[0])
	}
	if !strings.Contains(out, "Sessions: 1") {
		t.Fatalf("unexpected week totals: %q", out)
	}
}

func TestCalendarShowsMarks(t *testing.T) {
	path := testDataPath(t)

	if _, err := runCommand(t, "--data", path, "add", "--date", "2024-01-15", "--type", "running", "--duration", "30"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	out, err := runCommand(t, "--data", path, "calendar", "--month", "2024-01")
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if !strings.Contains(out, "January 2024") {
		t.Fatalf("missing title: %q", out)
	}
	if !strings.Contains(out, "15•") {
		t.Fatalf("expected mark on the 15th: %q", out)
	}
	if strings.Contains(out, "14•") {
		t.Fatalf("unexpected mark on the 14th: %q", out)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	path := testDataPath(t)

	out, err := runCommand(t, "--data", path, "theme", "get")
	if err != nil {
		t.Fatalf("theme get: %v", err)
	}
	if !strings.Contains(out, "light") {
		t.Fatalf("expected light default, got %q", out)
	}
	if _, err := runCommand(t, "--data", path, "theme", "set", "dark"); err != nil {
		t.Fatalf("theme set: %v", err)
	}
	out, err = runCommand(t, "--data", path, "theme", "get")
	if err != nil {
		t.Fatalf("theme get: %v", err)
	}
	if !strings.Contains(out, "dark") {
		t.Fatalf("expected dark after set, got %q", out)
	}
	if _, err := runCommand(t, "--data", path, "theme", "set", "sepia"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	path := testDataPath(t)

	if _, err := runCommand(t, "--data", path, "reset"); err == nil {
		t.Fatalf("expected reset without --yes to fail")
	}

	if _, err := runCommand(t, "--data", path, "add", "--date", "2024-01-15", "--type", "running", "--duration", "30"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := runCommand(t, "--data", path, "reset", "--yes"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	out, err := runCommand(t, "--data", path, "list")
	if err != nil {
		t.Fatalf("list after reset: %v", err)
	}
	if !strings.Contains(out, "No workouts recorded.") {
		t.Fatalf("expected wiped collection, got %q", out)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	path := testDataPath(t)
	exportFile := filepath.Join(t.TempDir(), "export.json")

	if _, err := runCommand(t, "--data", path, "add", "--date", "2024-01-15", "--type", "swimming", "--duration", "60", "--notes", "laps"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := runCommand(t, "--data", path, "export", "--out", exportFile); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := runCommand(t, "--data", path, "reset", "--yes"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	out, err := runCommand(t, "--data", path, "import", "--in", exportFile)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out, "Imported 1 workouts") {
		t.Fatalf("unexpected import output: %q", out)
	}
	out, err = runCommand(t, "--data", path, "list", "--date", "2024-01-15")
	if err != nil {
		t.Fatalf("list after import: %v", err)
	}
	if !strings.Contains(out, "swimming") || !strings.Contains(out, "laps") {
		t.Fatalf("imported record missing: %q", out)
	}
}

func TestDoctorCleanData(t *testing.T) {
	path := testDataPath(t)

	if _, err := runCommand(t, "--data", path, "add", "--date", "2024-01-15", "--type", "running", "--duration", "30"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	out, err := runCommand(t, "--data", path, "doctor")
	if err != nil {
		t.Fatalf("doctor on clean data: %v (%q)", err, out)
	}
	if !strings.Contains(out, "Duplicate ids: 0") {
		t.Fatalf("unexpected doctor output: %q", out)
	}
}
