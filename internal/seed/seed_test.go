package seed

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"empdir/internal/domain"
)

func TestLoadDefaultSeed(t *testing.T) {
	res, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "default", res.Source)
	assert.NotEmpty(t, res.Employees)
	assert.Empty(t, res.Skipped)
	for _, e := range res.Employees {
		assert.NotZero(t, e.ID)
		assert.NotEmpty(t, e.Name)
	}
}

func TestParseKeepsFirstDuplicate(t *testing.T) {
	input := `
[[employee]]
id = 1
name = "First"

[[employee]]
id = 2
name = "Second"

[[employee]]
id = 1
name = "Again"

[[employee]]
id = 0
name = "No id"

[[employee]]
id = 9
`
	res, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, res.Employees, 2)
	assert.Equal(t, "First", res.Employees[0].Name)
	assert.Equal(t, "Second", res.Employees[1].Name)

	require.Len(t, res.Skipped, 3)
	assert.Equal(t, "duplicate id", res.Skipped[0].Reason)
	assert.Equal(t, 2, res.Skipped[0].Index)
	assert.Equal(t, "missing id", res.Skipped[1].Reason)
	assert.Equal(t, "missing name", res.Skipped[2].Reason)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("[[employee]]\nid = 1\nname = \"A\"\nsalary = 10\n"))
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[employee]]\nid = 3\nname = \"C\"\nage = 30\n"), 0644))

	res, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, res.Source)
	assert.Equal(t, []domain.Employee{{ID: 3, Name: "C", Age: 30}}, res.Employees)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open seed file")
}

func TestWriteThenParse(t *testing.T) {
	emps := []domain.Employee{
		{ID: 1, Name: "A", Age: 20, Email: "a@example.com"},
		{ID: 2, Name: "B", DOB: "2001-01-01"},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, emps))
	assert.Contains(t, buf.String(), "[[employee]]")

	res, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, emps, res.Employees)
}
