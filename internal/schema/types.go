package schema

import (
	"time"
)

// Schema is the root of a parsed schema document.
type Schema struct {
	Version     string
	Title       string
	Description string
	Sections    []Section
}

// Section groups related fields under a tab in the editor.
type Section struct {
	ID          string
	Title       string
	Description string
	Icon        string
	// VisibleWhen is an optional condition string such as
	// "general.advanced == true". An empty string means always visible.
	VisibleWhen string
	Fields      []Field
}

// Field describes a single editable value.
type Field struct {
	ID          string
	Label       string
	Description string
	Type        FieldType
	Optional    bool
	EnvExpand   bool
	Widget      WidgetKind
	Keybind     string
	Subsection  string
}

// Kind identifies one of the six field type variants.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindFloat   Kind = "float"
	KindBoolean Kind = "boolean"
	KindEnum    Kind = "enum"
	KindPath    Kind = "path"
)

// FieldType is the closed set of field type variants. The schema grammar
// is versioned and fixed, so no implementations exist outside this
// package.
type FieldType interface {
	Kind() Kind
	// DefaultValue returns the declared default and whether one exists.
	DefaultValue() (any, bool)
}

// StringType is a free-form text value.
type StringType struct {
	Default   *string
	MaxLength int // 0 means unlimited
}

func (StringType) Kind() Kind { return KindString }

func (t StringType) DefaultValue() (any, bool) {
	if t.Default == nil {
		return nil, false
	}
	return *t.Default, true
}

// NumberType is an integer value with optional bounds.
type NumberType struct {
	Default *int64
	Min     *int64
	Max     *int64
}

func (NumberType) Kind() Kind { return KindNumber }

func (t NumberType) DefaultValue() (any, bool) {
	if t.Default == nil {
		return nil, false
	}
	return *t.Default, true
}

// FloatType is a floating point value with optional bounds and an
// optional increment step for arrow-key editing.
type FloatType struct {
	Default *float64
	Min     *float64
	Max     *float64
	Step    *float64
}

func (FloatType) Kind() Kind { return KindFloat }

func (t FloatType) DefaultValue() (any, bool) {
	if t.Default == nil {
		return nil, false
	}
	return *t.Default, true
}

// BooleanType is a toggle. The default is part of the declaration and
// always present.
type BooleanType struct {
	Default bool
}

func (BooleanType) Kind() Kind { return KindBoolean }

func (t BooleanType) DefaultValue() (any, bool) { return t.Default, true }

// EnumType selects one value out of a resolved option list.
type EnumType struct {
	Source  OptionSource
	Default *string
}

func (EnumType) Kind() Kind { return KindEnum }

func (t EnumType) DefaultValue() (any, bool) {
	if t.Default == nil {
		return nil, false
	}
	return *t.Default, true
}

// PathType is a filesystem path value.
type PathType struct {
	Default   *string
	FileType  FileTypeFilter
	MustExist bool
}

func (PathType) Kind() Kind { return KindPath }

func (t PathType) DefaultValue() (any, bool) {
	if t.Default == nil {
		return nil, false
	}
	return *t.Default, true
}

// OptionSource is the closed set of ways an enum field produces its
// candidate list.
type OptionSource interface {
	isOptionSource()
}

// StaticSource is a literal option list.
type StaticSource struct {
	Values []string
}

// ScriptSource runs a shell command template. ${key} placeholders are
// substituted from the current value map before execution.
type ScriptSource struct {
	Command string
	// CacheTTL bounds how long a resolved list may be reused. Zero
	// disables caching and the command runs on every resolution.
	CacheTTL  time.Duration
	DependsOn []string
}

// FunctionSource resolves through a named registered provider.
type FunctionSource struct {
	Name string
}

// ProviderSource resolves through a named registered provider.
type ProviderSource struct {
	Name string
}

// FileListSource enumerates files matching a glob pattern. If Extract is
// set, it is a regular expression applied to each full path and the
// first capture group becomes the display string; paths that do not
// match are skipped.
type FileListSource struct {
	Directory string
	Pattern   string
	Extract   string
}

func (StaticSource) isOptionSource()   {}
func (ScriptSource) isOptionSource()   {}
func (FunctionSource) isOptionSource() {}
func (ProviderSource) isOptionSource() {}
func (FileListSource) isOptionSource() {}

// WidgetKind selects the editing widget for a field.
type WidgetKind string

const (
	WidgetTextInput          WidgetKind = "text_input"
	WidgetNumberInput        WidgetKind = "number_input"
	WidgetToggle             WidgetKind = "toggle"
	WidgetDropdown           WidgetKind = "dropdown"
	WidgetDropdownSearchable WidgetKind = "dropdown_searchable"
	WidgetFilePicker         WidgetKind = "file_picker"
)

// FileTypeFilter narrows the kind of file a path field points at. It
// also selects the temp-file extension for external editor sessions.
type FileTypeFilter string

const (
	FileTypeNone  FileTypeFilter = ""
	FileTypeImage FileTypeFilter = "image"
	FileTypeJSON  FileTypeFilter = "json"
	FileTypeAny   FileTypeFilter = "any"
)

// QualifiedKey builds the dot-path key addressing a field's value in the
// value map.
func QualifiedKey(sectionID, fieldID string) string {
	return sectionID + "." + fieldID
}
