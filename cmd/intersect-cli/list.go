package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseList reads a comma separated list of ascending unsigned integers.
func parseList(src string) ([]uint64, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return []uint64{}, nil
	}
	fields := strings.Split(src, ",")
	result := make([]uint64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value '%s': %w", field, err)
		}
		if i > 0 && v < result[i-1] {
			return nil, fmt.Errorf("list is not sorted at '%s'", field)
		}
		result[i] = v
	}
	return result, nil
}

func parseLists(srcs []string) ([][]uint64, error) {
	result := make([][]uint64, len(srcs))
	for i, src := range srcs {
		list, err := parseList(src)
		if err != nil {
			return nil, fmt.Errorf("list %d: %w", i+1, err)
		}
		result[i] = list
	}
	return result, nil
}
