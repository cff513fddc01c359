package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FromFile parses a schema document from disk. The format is selected by
// file extension: .yaml/.yml documents are normalized to the JSON data
// model first, everything else is treated as JSON.
func FromFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return FromJSON(data)
	}
}

// FromJSON parses a JSON schema document.
func FromJSON(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return &s, nil
}

// FromYAML parses a YAML schema document by re-encoding it as JSON and
// running it through the same tagged-union decoding as FromJSON.
func FromYAML(data []byte) (*Schema, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("normalize schema: %w", err)
	}
	return FromJSON(normalized)
}

type schemaDoc struct {
	Version     string    `json:"version"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
}

// UnmarshalJSON decodes the document root.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var doc schemaDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	s.Version = doc.Version
	s.Title = doc.Title
	s.Description = doc.Description
	s.Sections = doc.Sections
	return nil
}

type sectionDoc struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	VisibleWhen string  `json:"visible_when"`
	Fields      []Field `json:"fields"`
}

// UnmarshalJSON decodes a section.
func (s *Section) UnmarshalJSON(data []byte) error {
	var doc sectionDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	s.ID = doc.ID
	s.Title = doc.Title
	s.Description = doc.Description
	s.Icon = doc.Icon
	s.VisibleWhen = doc.VisibleWhen
	s.Fields = doc.Fields
	return nil
}

// fieldDoc carries every attribute any field variant may declare. The
// type-specific attributes sit flattened next to the common ones, keyed
// off the "type" tag.
type fieldDoc struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Optional    bool   `json:"optional"`
	EnvExpand   bool   `json:"env_expand"`
	UIWidget    string `json:"ui_widget"`
	Keybind     string `json:"keybind"`
	Subsection  string `json:"subsection"`

	Default   json.RawMessage `json:"default"`
	MaxLength int             `json:"max_length"`
	Min       *json.Number    `json:"min"`
	Max       *json.Number    `json:"max"`
	Step      *float64        `json:"step"`

	OptionsSource json.RawMessage `json:"options_source"`

	FileType  string `json:"file_type"`
	MustExist bool   `json:"must_exist"`
}

// UnmarshalJSON decodes a field, dispatching on the "type" tag to build
// the matching FieldType variant.
func (f *Field) UnmarshalJSON(data []byte) error {
	var doc fieldDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	f.ID = doc.ID
	f.Label = doc.Label
	f.Description = doc.Description
	f.Optional = doc.Optional
	f.EnvExpand = doc.EnvExpand
	f.Keybind = doc.Keybind
	f.Subsection = doc.Subsection

	widget, err := parseWidgetKind(doc.UIWidget)
	if err != nil {
		return fmt.Errorf("field %q: %w", doc.ID, err)
	}
	f.Widget = widget

	ft, err := doc.fieldType()
	if err != nil {
		return fmt.Errorf("field %q: %w", doc.ID, err)
	}
	f.Type = ft
	return nil
}

func (doc *fieldDoc) fieldType() (FieldType, error) {
	switch Kind(doc.Type) {
	case KindString:
		def, err := rawString(doc.Default)
		if err != nil {
			return nil, err
		}
		return StringType{Default: def, MaxLength: doc.MaxLength}, nil

	case KindNumber:
		def, err := rawInt64(doc.Default)
		if err != nil {
			return nil, err
		}
		min, err := numberInt64(doc.Min)
		if err != nil {
			return nil, err
		}
		max, err := numberInt64(doc.Max)
		if err != nil {
			return nil, err
		}
		return NumberType{Default: def, Min: min, Max: max}, nil

	case KindFloat:
		def, err := rawFloat64(doc.Default)
		if err != nil {
			return nil, err
		}
		min, err := numberFloat64(doc.Min)
		if err != nil {
			return nil, err
		}
		max, err := numberFloat64(doc.Max)
		if err != nil {
			return nil, err
		}
		return FloatType{Default: def, Min: min, Max: max, Step: doc.Step}, nil

	case KindBoolean:
		def := false
		if len(doc.Default) > 0 {
			if err := json.Unmarshal(doc.Default, &def); err != nil {
				return nil, fmt.Errorf("boolean default: %w", err)
			}
		}
		return BooleanType{Default: def}, nil

	case KindEnum:
		if len(doc.OptionsSource) == 0 {
			return nil, fmt.Errorf("enum field requires options_source")
		}
		source, err := parseOptionSource(doc.OptionsSource)
		if err != nil {
			return nil, err
		}
		def, err := rawString(doc.Default)
		if err != nil {
			return nil, err
		}
		return EnumType{Source: source, Default: def}, nil

	case KindPath:
		def, err := rawString(doc.Default)
		if err != nil {
			return nil, err
		}
		filter, err := parseFileTypeFilter(doc.FileType)
		if err != nil {
			return nil, err
		}
		return PathType{Default: def, FileType: filter, MustExist: doc.MustExist}, nil

	default:
		return nil, fmt.Errorf("unknown field type %q", doc.Type)
	}
}

// optionSourceDoc mirrors fieldDoc: one struct for all variants, tagged
// by "type".
type optionSourceDoc struct {
	Type          string   `json:"type"`
	Values        []string `json:"values"`
	Command       string   `json:"command"`
	CacheDuration int64    `json:"cache_duration"`
	DependsOn     []string `json:"depends_on"`
	Name          string   `json:"name"`
	Provider      string   `json:"provider"`
	Directory     string   `json:"directory"`
	Pattern       string   `json:"pattern"`
	Extract       string   `json:"extract"`
}

func parseOptionSource(data json.RawMessage) (OptionSource, error) {
	var doc optionSourceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("options_source: %w", err)
	}
	switch doc.Type {
	case "static":
		return StaticSource{Values: doc.Values}, nil
	case "script":
		return ScriptSource{
			Command:   doc.Command,
			CacheTTL:  time.Duration(doc.CacheDuration) * time.Second,
			DependsOn: doc.DependsOn,
		}, nil
	case "function":
		return FunctionSource{Name: doc.Name}, nil
	case "provider":
		return ProviderSource{Name: doc.Provider}, nil
	case "file_list":
		return FileListSource{
			Directory: doc.Directory,
			Pattern:   doc.Pattern,
			Extract:   doc.Extract,
		}, nil
	default:
		return nil, fmt.Errorf("unknown options_source type %q", doc.Type)
	}
}

func parseWidgetKind(s string) (WidgetKind, error) {
	switch WidgetKind(s) {
	case "":
		return WidgetTextInput, nil
	case WidgetTextInput, WidgetNumberInput, WidgetToggle,
		WidgetDropdown, WidgetDropdownSearchable, WidgetFilePicker:
		return WidgetKind(s), nil
	default:
		return "", fmt.Errorf("unknown ui_widget %q", s)
	}
}

func parseFileTypeFilter(s string) (FileTypeFilter, error) {
	switch FileTypeFilter(s) {
	case FileTypeNone, FileTypeImage, FileTypeJSON, FileTypeAny:
		return FileTypeFilter(s), nil
	default:
		return "", fmt.Errorf("unknown file_type %q", s)
	}
}

func rawString(data json.RawMessage) (*string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}
	return &s, nil
}

func rawInt64(data json.RawMessage) (*int64, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}
	return &n, nil
}

func rawFloat64(data json.RawMessage) (*float64, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}
	return &f, nil
}

func numberInt64(n *json.Number) (*int64, error) {
	if n == nil {
		return nil, nil
	}
	v, err := n.Int64()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func numberFloat64(n *json.Number) (*float64, error) {
	if n == nil {
		return nil, nil
	}
	v, err := n.Float64()
	if err != nil {
		return nil, err
	}
	return &v, nil
}
