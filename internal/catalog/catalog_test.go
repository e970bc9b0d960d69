package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinIsValid(t *testing.T) {
	require.NoError(t, Builtin().Validate())
}

func TestLoadEmptyDirReturnsBuiltin(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Builtin(), c)
}

func TestLoadMissingFilesKeepBuiltin(t *testing.T) {
	c, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Builtin(), c)
}

func TestLoadOverridesPerFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "quotes.json", `["keep going"]`)
	write(t, dir, "decorations.json", `[{"name":"Fireplace","room":"Den"}]`)

	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"keep going"}, c.Quotes)
	require.Len(t, c.Decorations, 1)
	assert.Equal(t, "Fireplace", c.Decorations[0].Name)
	// Files not present keep their builtin content.
	assert.Equal(t, Builtin().Tips, c.Tips)
	assert.Equal(t, Builtin().Butler, c.Butler)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "tips.json", `{not json`)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidOverride(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "quotes.json", `[]`)

	_, err := Load(dir)
	assert.ErrorContains(t, err, "no quotes")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Catalog)
		want   string
	}{
		{"unnamed decoration", func(c *Catalog) { c.Decorations[0].Name = "" }, "needs a name"},
		{"no tips", func(c *Catalog) { c.Tips = nil }, "no tips"},
		{"no butler names", func(c *Catalog) { c.Butler.Names = nil }, "butler options"},
		{"inverted age range", func(c *Catalog) { c.Butler.AgeMax = c.Butler.AgeMin - 1 }, "age range"},
		{"mute personality", func(c *Catalog) { c.Butler.Personalities["stern"] = Personality{Description: "d"} }, "replicas"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Builtin()
			tc.mutate(c)
			assert.ErrorContains(t, c.Validate(), tc.want)
		})
	}
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
