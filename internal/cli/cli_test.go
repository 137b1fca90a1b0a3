package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classesJSON = `[
  {
    "id": "7d3c9a52-7a8e-4a8b-9b0e-5d2f1c7b9e01",
    "title": "Алгебра",
    "subject": "math",
    "teachers": [{"id": "0b8f6a1e-3c9d-4b7e-8f2a-1d4c6e9b3a05", "first_name": "Анна", "last_name": "Петрова", "role": "teacher"}],
    "sessions": [
      {"session_id": "c1a2b3c4-d5e6-4f70-8a9b-0c1d2e3f4a51", "start_date": "2024-01-01T09:00:00Z", "end_date": "2024-01-01T10:00:00Z", "status": "scheduled"},
      {"session_id": "c1a2b3c4-d5e6-4f70-8a9b-0c1d2e3f4a52", "start_date": "2024-01-03T22:00:00Z", "end_date": "2024-01-03T23:00:00Z", "status": "cancelled"}
    ]
  },
  {
    "id": "7d3c9a52-7a8e-4a8b-9b0e-5d2f1c7b9e02",
    "title": "Физика",
    "subject": "physics",
    "sessions": [
      {"session_id": "c1a2b3c4-d5e6-4f70-8a9b-0c1d2e3f4a61", "start_date": "2024-01-01T09:30:00Z", "end_date": "2024-01-01T10:30:00Z", "status": "running"}
    ]
  }
]`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classes.json")
	require.NoError(t, os.WriteFile(path, []byte(classesJSON), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWeekCommand(t *testing.T) {
	fixture := writeFixture(t)
	pngPath := filepath.Join(t.TempDir(), "week.png")

	out, err := run(t, "week", "--json", fixture, "--date", "2024-01-03", "--out", pngPath)
	require.NoError(t, err)

	assert.Contains(t, out, "01.01.2024 - 07.01.2024")
	assert.Contains(t, out, "col 1/2")
	assert.Contains(t, out, "col 2/2")
	assert.Contains(t, out, "Sessions: 2, outside hours: 1")

	data, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestWeekCommandEvening(t *testing.T) {
	out, err := run(t, "week", "--json", writeFixture(t), "--date", "2024-01-03",
		"--mode", "evening", "--out", filepath.Join(t.TempDir(), "w.png"))
	require.NoError(t, err)
	assert.Contains(t, out, "Sessions: 1, outside hours: 2")
}

func TestWeekCommandOpen(t *testing.T) {
	out, err := run(t, "week", "--json", writeFixture(t), "--date", "2024-01-03",
		"--open", "c1a2b3c4-d5e6-4f70-8a9b-0c1d2e3f4a51")
	require.NoError(t, err)
	assert.Contains(t, out, "Алгебра")
	assert.Contains(t, out, "Анна Петрова")
	assert.Contains(t, out, "09:00-10:00")

	_, err = run(t, "week", "--json", writeFixture(t), "--date", "2024-01-03",
		"--open", "c1a2b3c4-d5e6-4f70-8a9b-0c1d2e3f4a52")
	assert.Error(t, err, "evening session is outside business hours")
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list", "--json", writeFixture(t), "--date", "2024-01-03", "--query", "петрова")
	require.NoError(t, err)

	assert.Contains(t, out, "Понедельник, 01.01.2024")
	assert.Contains(t, out, "09:00-10:00  Алгебра")
	assert.NotContains(t, out, "Физика")

	out, err = run(t, "list", "--json", writeFixture(t), "--date", "2024-03-03")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions found")
}

func TestMonthCommand(t *testing.T) {
	pngPath := filepath.Join(t.TempDir(), "month.png")
	out, err := run(t, "month", "--json", writeFixture(t), "--date", "2024-01-15", "--out", pngPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Январь 2024: 5 weeks, 3 sessions")
	assert.FileExists(t, pngPath)
}

func TestDemoData(t *testing.T) {
	t.Setenv("DB_DSN", "")
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Алгебра 9А")
}

func TestSetupErrors(t *testing.T) {
	_, err := run(t, "list", "--tz", "Mars/Olympus")
	assert.Error(t, err)

	_, err = run(t, "list", "--date", "03.01.2024")
	assert.Error(t, err)

	_, err = run(t, "list", "--json", "/nonexistent.json")
	assert.Error(t, err)
}

func TestParseHourRange(t *testing.T) {
	r, err := parseHourRange("22-26")
	require.NoError(t, err)
	assert.Equal(t, 22, r.Earliest)
	assert.Equal(t, 26, r.Latest)

	for _, bad := range []string{"7", "a-b", "10-7", "25-30", "0-30"} {
		_, err := parseHourRange(bad)
		assert.Error(t, err, bad)
	}
}

func TestDemoClassesWeek(t *testing.T) {
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	classes := demoClasses(now)
	require.Len(t, classes, 3)
	assert.Equal(t, "2024-01-01T09:00:00Z", classes[0].Sessions[0].StartDate)
}
