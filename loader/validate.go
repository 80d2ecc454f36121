package loader

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks raw settings for values the engine can't use.
func validate(raw *rawSettings) error {
	ve := &ValidationError{}

	if raw.MaxHP != nil && *raw.MaxHP <= 0 {
		ve.Errors = append(ve.Errors, fmt.Sprintf("max_hp must be positive, got %d", *raw.MaxHP))
	}
	ve.Errors = append(ve.Errors, raw.badTypes...)

	keys := make([]string, 0, len(raw.Monsters))
	for key := range raw.Monsters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	seen := map[string]string{}
	for _, key := range keys {
		rank, ok := normalizeRank(key)
		if !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"monster key %q must be a value from 2 to 14 or one of J, Q, K, A", key))
			continue
		}
		if strings.TrimSpace(raw.Monsters[key]) == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("monster %q has an empty name", key))
		}
		if prev, dup := seen[rank]; dup {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"monster keys %q and %q both name rank %s", prev, key, rank))
		}
		seen[rank] = key
	}

	if raw.Seed < 0 {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf("negative seed %d is used as is", raw.Seed))
	}
	for _, name := range raw.unknown {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf("unknown setting %q ignored", name))
	}
	for _, name := range raw.duplicates {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf("%s{} declared more than once; the last one wins", name))
	}

	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
