package config

import (
	"os"
	"strings"
)

// ExpandEnv expands a leading tilde, ${VAR} references, and bare $VAR
// references in a string. Unset variables are left untouched.
func ExpandEnv(input string) string {
	result := input

	if result == "~" || strings.HasPrefix(result, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			result = home + strings.TrimPrefix(result, "~")
		}
	}

	// ${VAR} form. Stops at the first unset variable so the literal
	// reference survives for the user to see.
	for {
		start := strings.Index(result, "${")
		if start < 0 {
			break
		}
		rel := strings.Index(result[start:], "}")
		if rel < 0 {
			break
		}
		name := result[start+2 : start+rel]
		value, ok := os.LookupEnv(name)
		if !ok {
			break
		}
		result = result[:start] + value + result[start+rel+1:]
	}

	// Bare $VAR form.
	var b strings.Builder
	for i := 0; i < len(result); {
		if result[i] != '$' {
			b.WriteByte(result[i])
			i++
			continue
		}
		j := i + 1
		for j < len(result) && isEnvNameByte(result[j]) {
			j++
		}
		if j == i+1 {
			b.WriteByte(result[i])
			i++
			continue
		}
		name := result[i+1 : j]
		if value, ok := os.LookupEnv(name); ok {
			b.WriteString(value)
		} else {
			b.WriteString(result[i:j])
		}
		i = j
	}
	return b.String()
}

func isEnvNameByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
