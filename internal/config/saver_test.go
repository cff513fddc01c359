package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calwray/formwork/internal/schema"
)

func testSchema() *schema.Schema {
	def := "Dark"
	return &schema.Schema{
		Version:     "1.0",
		Title:       "Demo",
		Description: "Demo configuration",
		Sections: []schema.Section{
			{
				ID:          "general",
				Title:       "General",
				Description: "General settings",
				Fields: []schema.Field{
					{
						ID:          "name",
						Label:       "Name",
						Description: "Display name",
						Type:        schema.StringType{},
					},
					{
						ID:          "theme",
						Label:       "Theme",
						Description: "Color theme",
						Type:        schema.EnumType{Default: &def},
					},
					{
						ID:          "opacity",
						Label:       "Opacity",
						Description: "Window opacity",
						Type:        schema.FloatType{},
					},
				},
			},
		},
	}
}

func TestRenderAnnotations(t *testing.T) {
	store := NewStore()
	store.SetNested("general.name", "alice")
	store.SetNested("general.opacity", 1.0)

	out := Render(store, testSchema())

	assert.Contains(t, out, "# Demo\n")
	assert.Contains(t, out, "# Demo configuration\n")
	assert.Contains(t, out, "[general]\n")
	assert.Contains(t, out, "# General settings\n")
	assert.Contains(t, out, "# Display name\n")
	assert.Contains(t, out, `name = "alice"`)
	// Unset field falls back to its schema default.
	assert.Contains(t, out, `theme = "Dark"`)
	// Floats keep a decimal point so they reload as floats.
	assert.Contains(t, out, "opacity = 1.0")
}

func TestRenderEmptyPlaceholder(t *testing.T) {
	out := Render(NewStore(), testSchema())
	assert.Contains(t, out, `name = ""`, "field with no value and no default gets a placeholder")
}

func TestRenderEscapesQuotes(t *testing.T) {
	store := NewStore()
	store.SetNested("general.name", `say "hi"`)

	out := Render(store, testSchema())
	assert.Contains(t, out, `name = "say \"hi\""`)
}

func TestSaveRoundTrip(t *testing.T) {
	store := NewStore()
	store.SetNested("general.name", "bob")
	store.SetNested("general.opacity", 0.5)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Save(store, testSchema(), path))

	loaded, err := LoadFileExpand(path, false)
	require.NoError(t, err)

	flat := loaded.FlatMap()
	assert.Equal(t, "bob", flat["general.name"])
	assert.Equal(t, 0.5, flat["general.opacity"])
	assert.Equal(t, "Dark", flat["general.theme"])
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, Save(NewStore(), testSchema(), path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".formwork-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
