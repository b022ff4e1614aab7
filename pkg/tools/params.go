package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// ReadString returns the named argument as a trimmed string. Missing or
// non-string values read as "" so that required-field checks treat them as
// blank input rather than a transport fault.
func ReadString(args map[string]any, key string) string {
	v, ok := args[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// ReadStringDefault reads a string argument, falling back to defaultVal when
// it is blank.
func ReadStringDefault(args map[string]any, key, defaultVal string) string {
	if s := ReadString(args, key); s != "" {
		return s
	}
	return defaultVal
}

// ParseCount parses a string-typed numeric parameter. Blank means the
// operation default; non-numeric input is a user error, surfaced at the tool
// boundary as an "Error: ..." string by the caller.
func ParseCount(value string, def int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return n, nil
}
