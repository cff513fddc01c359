package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/calwray/formwork/internal/schema"
)

// Save serializes the whole store back to disk as comment-annotated
// TOML, ordered and documented by the schema. The write goes through a
// temp file and rename so a crash never truncates the config.
func Save(store *Store, s *schema.Schema, path string) error {
	content := Render(store, s)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".formwork-*.toml")
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Render produces the comment-annotated TOML document. Fields with no
// value and no schema default are written as an empty placeholder so the
// file always mirrors the full schema.
func Render(store *Store, s *schema.Schema) string {
	var b strings.Builder

	if s.Title != "" {
		fmt.Fprintf(&b, "# %s\n", s.Title)
	}
	if s.Description != "" {
		fmt.Fprintf(&b, "# %s\n", s.Description)
	}
	b.WriteString("# This file is generated by formwork but safe to edit manually\n\n")

	for _, section := range s.Sections {
		fmt.Fprintf(&b, "[%s]\n", section.ID)
		if section.Description != "" {
			fmt.Fprintf(&b, "# %s\n", section.Description)
		}

		for _, field := range section.Fields {
			if field.Description != "" {
				fmt.Fprintf(&b, "# %s\n", field.Description)
			}

			key := schema.QualifiedKey(section.ID, field.ID)
			value, ok := store.GetNested(key)
			if !ok {
				value, ok = field.Type.DefaultValue()
			}
			if ok {
				fmt.Fprintf(&b, "%s = %s\n\n", field.ID, formatValue(value))
			} else {
				fmt.Fprintf(&b, "%s = \"\"\n\n", field.ID)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		// Keep floats distinguishable from integers on reload.
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = formatValue(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return fmt.Sprintf("%q", fmt.Sprint(v))
	}
}
