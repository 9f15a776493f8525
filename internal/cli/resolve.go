package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// resolveScheduleID resolves a schedule identifier which can be:
//   - a 1-based position as shown by "schedule list"
//   - a full id
//   - a unique id prefix
//
// Positions take precedence over id prefixes made of digits.
func resolveScheduleID(ctx context.Context, app *App, input string) (string, error) {
	schedules, err := app.Schedules.List(ctx)
	if err != nil {
		return "", err
	}

	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(schedules) {
		return schedules[n-1].ID, nil
	}

	var matches []string
	for _, s := range schedules {
		if s.ID == input {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("schedule %q not found", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("schedule prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTagID accepts a tag id or a case-insensitive tag name.
func resolveTagID(ctx context.Context, app *App, input string) (string, error) {
	tags, err := app.Tags.List(ctx)
	if err != nil {
		return "", err
	}
	for _, t := range tags {
		if t.ID == input {
			return t.ID, nil
		}
	}
	for _, t := range tags {
		if strings.EqualFold(t.Name, input) {
			return t.ID, nil
		}
	}
	return "", fmt.Errorf("tag %q not found (see: slotlog tag list)", input)
}
