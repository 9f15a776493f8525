package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/spf13/pflag"
)

// slotSpec is one parsed slot selector. Slot selectors are resolved against
// the interval only once settings are known.
type slotSpec struct {
	raw string
	// byTime selects slots overlapping [start, end) in minutes; otherwise
	// start..end are inclusive slot indexes.
	byTime     bool
	start, end int
}

// parseSlotSpec accepts "12", "12-15", "06:00" and "06:00-07:30".
func parseSlotSpec(s string) (slotSpec, error) {
	s = strings.TrimSpace(s)
	spec := slotSpec{raw: s}
	if s == "" {
		return spec, fmt.Errorf("empty slot")
	}

	from, to, isRange := strings.Cut(s, "-")
	if strings.Contains(from, ":") {
		spec.byTime = true
		start, err := parseClockMinute(from)
		if err != nil {
			return spec, err
		}
		spec.start = start
		if !isRange {
			spec.end = start + 1
			if start >= domain.MinutesPerDay {
				return spec, fmt.Errorf("slot time %q is the end of the day", s)
			}
			return spec, nil
		}
		end, err := parseClockMinute(to)
		if err != nil {
			return spec, err
		}
		if end <= start {
			return spec, fmt.Errorf("slot range %q ends before it starts", s)
		}
		spec.end = end
		return spec, nil
	}

	start, err := strconv.Atoi(from)
	if err != nil || start < 0 {
		return spec, fmt.Errorf("slot %q is not a slot number or HH:MM time", s)
	}
	spec.start, spec.end = start, start
	if isRange {
		end, err := strconv.Atoi(to)
		if err != nil || end < start {
			return spec, fmt.Errorf("slot range %q is not N-M with N <= M", s)
		}
		spec.end = end
	}
	return spec, nil
}

// slots expands the selector to slot indexes at the given interval.
func (s slotSpec) slots(interval int) ([]int, error) {
	total := domain.MinutesPerDay / interval
	first, last := s.start, s.end
	if s.byTime {
		first, last = s.start/interval, (s.end-1)/interval
	}
	if last >= total {
		return nil, fmt.Errorf("slot %q is past the last slot (%d)", s.raw, total-1)
	}
	out := make([]int, 0, last-first+1)
	for slot := first; slot <= last; slot++ {
		out = append(out, slot)
	}
	return out, nil
}

// slotListValue collects slot selectors from repeated or comma-separated
// flag values.
type slotListValue struct {
	specs []slotSpec
}

var _ pflag.Value = (*slotListValue)(nil)

func (v *slotListValue) String() string {
	raws := make([]string, len(v.specs))
	for i, s := range v.specs {
		raws[i] = s.raw
	}
	return strings.Join(raws, ",")
}

func (v *slotListValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		spec, err := parseSlotSpec(part)
		if err != nil {
			return err
		}
		v.specs = append(v.specs, spec)
	}
	return nil
}

func (v *slotListValue) Type() string { return "slots" }

// resolve expands every selector in order. Duplicates are kept; the engine
// collapses them.
func (v *slotListValue) resolve(interval int) ([]int, error) {
	var out []int
	for _, spec := range v.specs {
		slots, err := spec.slots(interval)
		if err != nil {
			return nil, err
		}
		out = append(out, slots...)
	}
	return out, nil
}

var weekdayNames = map[string]int{
	"sun": 0, "sunday": 0,
	"mon": 1, "monday": 1,
	"tue": 2, "tues": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thur": 4, "thurs": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
}

var weekdayGroups = map[string][]int{
	"all":      domain.AllWeekdays,
	"daily":    domain.AllWeekdays,
	"everyday": domain.AllWeekdays,
	"weekdays": {1, 2, 3, 4, 5},
	"weekends": {0, 6},
	"weekend":  {0, 6},
}

// weekdaySetValue parses "mon,tue", "weekdays", "weekends", "all" or
// numeric days 0-6 (0 = Sunday).
type weekdaySetValue struct {
	days []int
	set  bool
}

var _ pflag.Value = (*weekdaySetValue)(nil)

func (v *weekdaySetValue) String() string {
	if !v.set {
		return ""
	}
	parts := make([]string, len(v.days))
	for i, d := range v.days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

func (v *weekdaySetValue) Set(s string) error {
	seen := make(map[int]bool)
	for _, part := range strings.Split(strings.ToLower(s), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if group, ok := weekdayGroups[part]; ok {
			for _, d := range group {
				seen[d] = true
			}
			continue
		}
		if d, ok := weekdayNames[part]; ok {
			seen[d] = true
			continue
		}
		if d, err := strconv.Atoi(part); err == nil && d >= 0 && d <= 6 {
			seen[d] = true
			continue
		}
		return fmt.Errorf("unknown weekday %q", part)
	}
	if len(seen) == 0 {
		return fmt.Errorf("no weekdays in %q", s)
	}

	v.days = v.days[:0]
	for d := range seen {
		v.days = append(v.days, d)
	}
	sort.Ints(v.days)
	v.set = true
	return nil
}

func (v *weekdaySetValue) Type() string { return "days" }

// clockValue is a minute of the day written as HH:MM. "24:00" is the end of
// the day.
type clockValue struct {
	minute int
	set    bool
}

var _ pflag.Value = (*clockValue)(nil)

func (v *clockValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", v.minute/60, v.minute%60)
}

func (v *clockValue) Set(s string) error {
	m, err := parseClockMinute(s)
	if err != nil {
		return err
	}
	v.minute, v.set = m, true
	return nil
}

func (v *clockValue) Type() string { return "HH:MM" }

func (v *clockValue) ptr() *int {
	if !v.set {
		return nil
	}
	m := v.minute
	return &m
}

func parseClockMinute(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("time %q is not HH:MM", s)
	}
	h, herr := strconv.Atoi(hh)
	m, merr := strconv.Atoi(mm)
	if herr != nil || merr != nil || h < 0 || m < 0 || m > 59 || len(mm) != 2 {
		return 0, fmt.Errorf("time %q is not HH:MM", s)
	}
	minute := h*60 + m
	if minute > domain.MinutesPerDay {
		return 0, fmt.Errorf("time %q is past 24:00", s)
	}
	return minute, nil
}
