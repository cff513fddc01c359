package schema

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchema = `{
	"version": "1.0",
	"title": "Test Config",
	"description": "A schema used in tests",
	"sections": [
		{
			"id": "general",
			"title": "General",
			"icon": "G",
			"fields": [
				{
					"id": "name",
					"label": "Name",
					"description": "Display name",
					"type": "string",
					"default": "anon",
					"max_length": 32
				},
				{
					"id": "retries",
					"label": "Retries",
					"description": "Retry count",
					"type": "number",
					"default": 3,
					"min": 0,
					"max": 10,
					"ui_widget": "number_input"
				},
				{
					"id": "opacity",
					"label": "Opacity",
					"description": "Window opacity",
					"type": "float",
					"default": 0.8,
					"min": 0.0,
					"max": 1.0,
					"step": 0.05
				},
				{
					"id": "advanced",
					"label": "Advanced mode",
					"description": "Enable expert settings",
					"type": "boolean",
					"default": false,
					"ui_widget": "toggle"
				},
				{
					"id": "theme",
					"label": "Theme",
					"description": "Color theme",
					"type": "enum",
					"default": "Dark",
					"options_source": {"type": "static", "values": ["Light", "Dark", "Auto"]},
					"ui_widget": "dropdown"
				},
				{
					"id": "wallpaper",
					"label": "Wallpaper",
					"description": "Background image",
					"type": "path",
					"file_type": "image",
					"must_exist": true,
					"subsection": "Appearance"
				}
			]
		},
		{
			"id": "expert",
			"title": "Expert",
			"visible_when": "general.advanced == true",
			"fields": [
				{
					"id": "font",
					"label": "Font",
					"description": "Installed font",
					"type": "enum",
					"options_source": {
						"type": "script",
						"command": "fc-list : family",
						"cache_duration": 60,
						"depends_on": ["general.name"]
					},
					"ui_widget": "dropdown_searchable"
				}
			]
		}
	]
}`

func TestFromJSON(t *testing.T) {
	s, err := FromJSON([]byte(sampleSchema))
	require.NoError(t, err)

	assert.Equal(t, "1.0", s.Version)
	assert.Equal(t, "Test Config", s.Title)
	require.Len(t, s.Sections, 2)

	general := s.Sections[0]
	assert.Equal(t, "general", general.ID)
	assert.Empty(t, general.VisibleWhen)
	require.Len(t, general.Fields, 6)

	name := general.Fields[0]
	st, ok := name.Type.(StringType)
	require.True(t, ok, "expected StringType, got %T", name.Type)
	require.NotNil(t, st.Default)
	assert.Equal(t, "anon", *st.Default)
	assert.Equal(t, 32, st.MaxLength)
	assert.Equal(t, WidgetTextInput, name.Widget, "ui_widget defaults to text_input")

	retries := general.Fields[1]
	nt, ok := retries.Type.(NumberType)
	require.True(t, ok)
	assert.Equal(t, int64(3), *nt.Default)
	assert.Equal(t, int64(0), *nt.Min)
	assert.Equal(t, int64(10), *nt.Max)
	assert.Equal(t, WidgetNumberInput, retries.Widget)

	opacity := general.Fields[2]
	flt, ok := opacity.Type.(FloatType)
	require.True(t, ok)
	assert.Equal(t, 0.8, *flt.Default)
	assert.Equal(t, 0.05, *flt.Step)

	advanced := general.Fields[3]
	bt, ok := advanced.Type.(BooleanType)
	require.True(t, ok)
	assert.False(t, bt.Default)

	theme := general.Fields[4]
	et, ok := theme.Type.(EnumType)
	require.True(t, ok)
	static, ok := et.Source.(StaticSource)
	require.True(t, ok)
	assert.Equal(t, []string{"Light", "Dark", "Auto"}, static.Values)
	assert.Equal(t, "Dark", *et.Default)

	wallpaper := general.Fields[5]
	pt, ok := wallpaper.Type.(PathType)
	require.True(t, ok)
	assert.Equal(t, FileTypeImage, pt.FileType)
	assert.True(t, pt.MustExist)
	assert.Equal(t, "Appearance", wallpaper.Subsection)

	expert := s.Sections[1]
	assert.Equal(t, "general.advanced == true", expert.VisibleWhen)
	font, ok := expert.Fields[0].Type.(EnumType)
	require.True(t, ok)
	script, ok := font.Source.(ScriptSource)
	require.True(t, ok)
	assert.Equal(t, "fc-list : family", script.Command)
	assert.Equal(t, 60*time.Second, script.CacheTTL)
	assert.Equal(t, []string{"general.name"}, script.DependsOn)
}

func TestFromYAML(t *testing.T) {
	doc := `
version: "1.0"
title: YAML Config
sections:
  - id: general
    title: General
    fields:
      - id: mode
        label: Mode
        description: Operating mode
        type: enum
        default: auto
        options_source:
          type: file_list
          directory: ~/modes
          pattern: "*.conf"
          extract: "([^/]+)\\.conf$"
`
	s, err := FromYAML([]byte(doc))
	require.NoError(t, err)
	require.Len(t, s.Sections, 1)

	et, ok := s.Sections[0].Fields[0].Type.(EnumType)
	require.True(t, ok)
	fl, ok := et.Source.(FileListSource)
	require.True(t, ok)
	assert.Equal(t, "~/modes", fl.Directory)
	assert.Equal(t, "*.conf", fl.Pattern)
	assert.Equal(t, `([^/]+)\.conf$`, fl.Extract)
}

func TestFromFileSelectsFormatByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(sampleSchema), 0o644))
	s, err := FromFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "Test Config", s.Title)

	yamlPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("version: \"2\"\ntitle: Y\nsections: []\n"), 0o644))
	s, err = FromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "2", s.Version)
}

func TestExampleSchemaParsesAndValidates(t *testing.T) {
	s, err := FromFile(filepath.Join("..", "..", "examples", "desktop-schema.json"))
	require.NoError(t, err)
	require.NoError(t, Validate(s))

	assert.Equal(t, "Desktop Shell Configuration", s.Title)
	require.Len(t, s.Sections, 2)
	assert.Equal(t, "general.advanced == true", s.Sections[1].VisibleWhen)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"unknown field type", `{"version":"1","sections":[{"id":"a","title":"A","fields":[{"id":"x","label":"X","description":"","type":"color"}]}]}`},
		{"unknown widget", `{"version":"1","sections":[{"id":"a","title":"A","fields":[{"id":"x","label":"X","description":"","type":"string","ui_widget":"slider"}]}]}`},
		{"enum without source", `{"version":"1","sections":[{"id":"a","title":"A","fields":[{"id":"x","label":"X","description":"","type":"enum"}]}]}`},
		{"unknown source type", `{"version":"1","sections":[{"id":"a","title":"A","fields":[{"id":"x","label":"X","description":"","type":"enum","options_source":{"type":"http"}}]}]}`},
		{"malformed json", `{"version":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromJSON([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}
