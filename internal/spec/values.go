package spec

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValues parses the -values override, a comma-separated list of axis
// inputs like "0,25,50,75,100". An empty string means no override.
func ParseValues(input string) ([]float64, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	parts := strings.Split(input, ",")
	var values []float64
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			return nil, fmt.Errorf("empty value in %q", input)
		}
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", trimmed)
		}
		values = append(values, value)
	}
	return values, nil
}
