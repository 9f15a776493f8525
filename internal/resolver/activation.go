package resolver

import "github.com/alexanderramin/slotlog/internal/domain"

// IsActive reports whether a schedule is in effect on date: the date is on or
// after StartsOn and falls on one of the schedule's weekdays. Dates are compared
// as strings, which is valid for the YYYY-MM-DD layout.
func IsActive(s domain.DailySchedule, date string) bool {
	if date < s.StartsOn {
		return false
	}
	weekday, ok := domain.Weekday(date)
	if !ok {
		return false
	}
	return s.HasWeekday(weekday)
}
