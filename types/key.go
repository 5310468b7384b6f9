package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseKey parses a selector value as a table key.
func ParseKey(value string) (int, error) {
	key, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("parsing key %q: %w", value, err)
	}
	return key, nil
}

// FormatStat prints a stat as tabulated: 450 stays "450", 1.5 stays "1.5".
func FormatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
