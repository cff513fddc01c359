package tui

import (
	"strconv"
	"strings"
)

// EvaluateCondition evaluates a section visibility predicate of the
// form "<key> == <literal>" or "<key> != <literal>" against the value
// map. Literals are true, false, a bare integer, or a quoted or
// unquoted string; the type of the stored value picks the comparison.
//
// The policy is fail-open: an absent key, an incompatible literal or a
// condition that does not parse all evaluate to true, so a malformed
// predicate can never hide a section irrecoverably.
func EvaluateCondition(condition string, values map[string]any) bool {
	condition = strings.TrimSpace(condition)
	if condition == "" {
		return true
	}

	if keyPart, literal, found := strings.Cut(condition, "=="); found {
		eq, ok := compareLiteral(values, keyPart, literal)
		if !ok {
			return true
		}
		return eq
	}
	if keyPart, literal, found := strings.Cut(condition, "!="); found {
		eq, ok := compareLiteral(values, keyPart, literal)
		if !ok {
			return true
		}
		return !eq
	}
	return true
}

// compareLiteral reports whether the stored value equals the literal,
// and whether the comparison was possible at all.
func compareLiteral(values map[string]any, keyPart, literal string) (equal, ok bool) {
	key := strings.TrimSpace(keyPart)
	literal = strings.TrimSpace(literal)

	actual, present := values[key]
	if !present {
		return false, false
	}

	switch v := actual.(type) {
	case bool:
		switch literal {
		case "true":
			return v, true
		case "false":
			return !v, true
		}
		return false, false
	case string:
		expected := strings.Trim(strings.Trim(literal, `"`), `'`)
		return v == expected, true
	case int64:
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return false, false
		}
		return v == n, true
	}
	return false, false
}
