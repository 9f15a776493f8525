package domain

import "gopkg.in/yaml.v3"

// MinutesPerDay is the length of the day every range and slot lives in.
const MinutesPerDay = 24 * 60

// AllWeekdays is Sunday (0) through Saturday (6).
var AllWeekdays = []int{0, 1, 2, 3, 4, 5, 6}

// DailySchedule is a recurring rule: TagID applies to the minute range
// [StartMinute, EndMinute) on each listed weekday from StartsOn onward.
// StartMinute == EndMinute covers the whole day; StartMinute > EndMinute wraps
// past midnight.
type DailySchedule struct {
	ID          string
	TagID       string
	StartMinute int
	EndMinute   int
	Weekdays    []int
	StartsOn    string
}

func (s DailySchedule) IsFullDay() bool {
	return s.StartMinute == s.EndMinute
}

func (s DailySchedule) IsOvernight() bool {
	return s.StartMinute > s.EndMinute
}

// HasWeekday reports whether the rule applies on weekday d.
func (s DailySchedule) HasWeekday(d int) bool {
	for _, w := range s.Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// Raw converts the schedule back into its persisted shape with every field set.
func (s DailySchedule) Raw() RawSchedule {
	id, tagID, startsOn := s.ID, s.TagID, s.StartsOn
	start, end := s.StartMinute, s.EndMinute
	weekdays := append([]int(nil), s.Weekdays...)
	return RawSchedule{
		ID:          &id,
		TagID:       &tagID,
		StartMinute: &start,
		EndMinute:   &end,
		Weekdays:    weekdays,
		StartsOn:    &startsOn,
	}
}

// RawSchedule is a schedule as it comes out of storage or an import file.
// Any field may be missing; the resolver's normalizer fills the gaps.
type RawSchedule struct {
	ID          *string `yaml:"id,omitempty"`
	TagID       *string `yaml:"tag,omitempty"`
	StartMinute *int    `yaml:"start_minute,omitempty"`
	EndMinute   *int    `yaml:"end_minute,omitempty"`
	Weekdays    []int   `yaml:"weekdays,omitempty,flow"`
	StartsOn    *string `yaml:"starts_on,omitempty"`
}

// SchedulePatch carries the fields of an update. Nil fields are left unchanged.
type SchedulePatch struct {
	TagID       *string
	StartMinute *int
	EndMinute   *int
	Weekdays    []int
	StartsOn    *string
}

// Apply merges the patch over s and returns the merged raw record. The id is
// always kept.
func (p SchedulePatch) Apply(s DailySchedule) RawSchedule {
	raw := s.Raw()
	if p.TagID != nil {
		raw.TagID = p.TagID
	}
	if p.StartMinute != nil {
		raw.StartMinute = p.StartMinute
	}
	if p.EndMinute != nil {
		raw.EndMinute = p.EndMinute
	}
	if p.Weekdays != nil {
		raw.Weekdays = append([]int(nil), p.Weekdays...)
	}
	if p.StartsOn != nil {
		raw.StartsOn = p.StartsOn
	}
	return raw
}

// UnmarshalYAML decodes each field on its own. A field with the wrong shape is
// left nil for the normalizer instead of failing the whole record, and a
// weekday list keeps the elements that are integers.
func (r *RawSchedule) UnmarshalYAML(node *yaml.Node) error {
	*r = RawSchedule{}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		val := node.Content[i+1]
		switch node.Content[i].Value {
		case "id":
			r.ID = decodeLoose[string](val)
		case "tag":
			r.TagID = decodeLoose[string](val)
		case "start_minute":
			r.StartMinute = decodeLoose[int](val)
		case "end_minute":
			r.EndMinute = decodeLoose[int](val)
		case "weekdays":
			r.Weekdays = decodeWeekdayNodes(val)
		case "starts_on":
			r.StartsOn = decodeLoose[string](val)
		}
	}
	return nil
}

func decodeLoose[T any](node *yaml.Node) *T {
	if node.Tag == "!!null" {
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return nil
	}
	return &v
}

func decodeWeekdayNodes(node *yaml.Node) []int {
	if node.Kind != yaml.SequenceNode {
		return nil
	}
	var days []int
	for _, item := range node.Content {
		if d := decodeLoose[int](item); d != nil {
			days = append(days, *d)
		}
	}
	return days
}
