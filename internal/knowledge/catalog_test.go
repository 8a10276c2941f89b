package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	events := DefaultCatalog()
	require.NotEmpty(t, events)

	seen := make(map[string]bool, len(events))
	for _, ev := range events {
		assert.NotEmpty(t, ev.Name)
		assert.False(t, seen[ev.Name], "duplicate event %q", ev.Name)
		seen[ev.Name] = true

		_, known := Departments[ev.Department]
		assert.True(t, known, "event %q has unknown department %q", ev.Name, ev.Department)

		require.NotEmpty(t, ev.Days, "event %q has no days", ev.Name)
		for _, d := range ev.Days {
			assert.GreaterOrEqual(t, d, 1, "event %q", ev.Name)
			assert.LessOrEqual(t, d, 3, "event %q", ev.Name)
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `events:
  - name: Test Rally
    department: CSE
    venue: Lab 1
    days: [1, 2]
    price: 50
    mishearings: ["best rally"]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	events, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Test Rally", events[0].Name)
	assert.Equal(t, []int{1, 2}, events[0].Days)
	assert.Equal(t, []string{"best rally"}, events[0].Mishearings)
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("events: []\n"), 0o644))
	_, err = LoadCatalog(empty)
	assert.Error(t, err)
}
