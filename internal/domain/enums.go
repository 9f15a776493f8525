package domain

type NotificationMode string

const (
	NotifyOff   NotificationMode = "off"
	NotifyAlert NotificationMode = "notify"
	NotifySound NotificationMode = "sound"
)

// ValidNotificationModes is the canonical set of accepted notification modes.
var ValidNotificationModes = map[NotificationMode]bool{
	NotifyOff: true, NotifyAlert: true, NotifySound: true,
}

// ParseNotificationMode maps a stored or user-supplied mode onto a known value.
// "browser" is the name older data used for NotifyAlert. Unknown values fall back
// to the default mode.
func ParseNotificationMode(s string) NotificationMode {
	switch s {
	case "off":
		return NotifyOff
	case "notify", "browser":
		return NotifyAlert
	case "sound":
		return NotifySound
	default:
		return DefaultSettings().NotificationMode
	}
}

type OverrideKind string

const (
	OverrideInherit  OverrideKind = "inherit"
	OverrideClear    OverrideKind = "clear"
	OverrideAssigned OverrideKind = "assigned"
)

const (
	Clock12 = 12
	Clock24 = 24
)

// ValidIntervals lists the slot lengths in minutes. Each divides MinutesPerDay.
var ValidIntervals = map[int]bool{15: true, 30: true}

// ValidClockFormats lists the accepted clock formats.
var ValidClockFormats = map[int]bool{Clock12: true, Clock24: true}
