package domain

type Settings struct {
	Interval         int
	ClockFormat      int
	NotificationMode NotificationMode
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() Settings {
	return Settings{
		Interval:         30,
		ClockFormat:      Clock24,
		NotificationMode: NotifyAlert,
	}
}

// TotalSlots is the number of slots in a day at the configured interval.
func (s Settings) TotalSlots() int {
	return MinutesPerDay / s.Interval
}

// Normalize replaces invalid values with defaults so older rows stay usable.
func (s *Settings) Normalize() {
	def := DefaultSettings()
	if !ValidIntervals[s.Interval] {
		s.Interval = def.Interval
	}
	if !ValidClockFormats[s.ClockFormat] {
		s.ClockFormat = def.ClockFormat
	}
	s.NotificationMode = ParseNotificationMode(string(s.NotificationMode))
}

// SettingsPatch carries the fields of a settings update. Nil fields are left unchanged.
type SettingsPatch struct {
	Interval         *int
	ClockFormat      *int
	NotificationMode *NotificationMode
}
