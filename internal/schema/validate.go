package schema

import (
	"fmt"
	"os"
)

// Validate checks structural requirements on a parsed schema: at least
// one section, no empty sections, no duplicate qualified keys, and
// declared defaults that satisfy their own field constraints.
func Validate(s *Schema) error {
	if len(s.Sections) == 0 {
		return fmt.Errorf("schema must have at least one section")
	}
	seen := make(map[string]struct{})
	for _, section := range s.Sections {
		if section.ID == "" {
			return fmt.Errorf("section %q has no id", section.Title)
		}
		if len(section.Fields) == 0 {
			return fmt.Errorf("section %q has no fields", section.ID)
		}
		for _, field := range section.Fields {
			key := QualifiedKey(section.ID, field.ID)
			if _, dup := seen[key]; dup {
				return fmt.Errorf("duplicate field key %q", key)
			}
			seen[key] = struct{}{}

			if err := validateDefault(field.Type); err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}
		}
	}
	return nil
}

// validateDefault checks a declared default against the field's own
// constraints. Path defaults skip the must_exist check because the
// schema may describe paths that only exist on the user's machine.
func validateDefault(ft FieldType) error {
	switch t := ft.(type) {
	case StringType:
		if t.Default != nil {
			return ValidateValue(t, *t.Default)
		}
	case NumberType:
		if t.Default != nil {
			return ValidateValue(t, *t.Default)
		}
	case FloatType:
		if t.Default != nil {
			return ValidateValue(t, *t.Default)
		}
	case EnumType:
		static, isStatic := t.Source.(StaticSource)
		if t.Default == nil || !isStatic {
			return nil
		}
		for _, v := range static.Values {
			if v == *t.Default {
				return nil
			}
		}
		return fmt.Errorf("default %q is not among the static options", *t.Default)
	}
	return nil
}

// ValidateValue checks a single value against a field type declaration.
func ValidateValue(ft FieldType, value any) error {
	switch t := ft.(type) {
	case StringType:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("value must be a string")
		}
		if t.MaxLength > 0 && len(s) > t.MaxLength {
			return fmt.Errorf("string exceeds max length of %d", t.MaxLength)
		}

	case NumberType:
		n, ok := asInt64(value)
		if !ok {
			return fmt.Errorf("value must be an integer")
		}
		if t.Min != nil && n < *t.Min {
			return fmt.Errorf("number is below minimum of %d", *t.Min)
		}
		if t.Max != nil && n > *t.Max {
			return fmt.Errorf("number exceeds maximum of %d", *t.Max)
		}

	case FloatType:
		f, ok := asFloat64(value)
		if !ok {
			return fmt.Errorf("value must be a number")
		}
		if t.Min != nil && f < *t.Min {
			return fmt.Errorf("number is below minimum of %v", *t.Min)
		}
		if t.Max != nil && f > *t.Max {
			return fmt.Errorf("number exceeds maximum of %v", *t.Max)
		}

	case BooleanType:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("value must be a boolean")
		}

	case EnumType:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("enum value must be a string")
		}

	case PathType:
		p, ok := value.(string)
		if !ok {
			return fmt.Errorf("path must be a string")
		}
		if t.MustExist {
			if _, err := os.Stat(p); err != nil {
				return fmt.Errorf("path does not exist: %s", p)
			}
		}

	default:
		return fmt.Errorf("unknown field type %T", ft)
	}
	return nil
}

func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

func asFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}
