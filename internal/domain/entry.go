package domain

import "fmt"

// LegacyClearTagID is the reserved tag id older data stored to mean "explicitly
// no tag". It is only recognised on import.
const LegacyClearTagID = "__tt_clear__"

// Override is a manual decision for one slot. Inherit means no decision was
// recorded and the schedules apply; Clear forces the slot empty; Assigned forces
// TagID.
type Override struct {
	Kind  OverrideKind
	TagID string
}

func Inherit() Override { return Override{Kind: OverrideInherit} }

func Clear() Override { return Override{Kind: OverrideClear} }

func Assign(tagID string) Override { return Override{Kind: OverrideAssigned, TagID: tagID} }

// IsSet reports whether the override is stored, i.e. Clear or Assigned.
func (o Override) IsSet() bool {
	return o.Kind == OverrideClear || o.Kind == OverrideAssigned
}

func (o Override) String() string {
	switch o.Kind {
	case OverrideClear:
		return "clear"
	case OverrideAssigned:
		return fmt.Sprintf("assigned(%s)", o.TagID)
	default:
		return "inherit"
	}
}

// OverrideFromTagID decodes the flat tag-id form used by older exports.
func OverrideFromTagID(tagID string) Override {
	switch tagID {
	case "":
		return Inherit()
	case LegacyClearTagID:
		return Clear()
	default:
		return Assign(tagID)
	}
}

// TimeEntry is one stored manual override. At most one exists per (Date, Slot).
type TimeEntry struct {
	Date     string
	Slot     int
	Override Override
}
