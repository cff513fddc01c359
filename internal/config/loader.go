package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// LoadFile reads a TOML config file into a Store with environment
// references expanded.
func LoadFile(path string) (*Store, error) {
	return LoadFileExpand(path, true)
}

// LoadFileExpand reads a TOML config file. When expand is false,
// environment and tilde references are kept literal; the editor uses
// this mode so $VAR text stays visible and editable.
func LoadFileExpand(path string, expand bool) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, expand)
}

// Parse decodes TOML content into a Store.
func Parse(data []byte, expand bool) (*Store, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	values := make(map[string]any, len(raw))
	for key, value := range raw {
		values[key] = normalize(value, expand)
	}
	return FromMap(values), nil
}

// normalize maps TOML decode results onto the store's value types.
func normalize(value any, expand bool) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = normalize(val, expand)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = normalize(val, expand)
		}
		return out
	case string:
		if expand {
			return ExpandEnv(v)
		}
		return v
	case int64, float64, bool:
		return v
	case int:
		return int64(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
