package resolver

import "github.com/alexanderramin/slotlog/internal/domain"

// Covers reports whether the schedule's minute range overlaps the slot
// [slot*interval, (slot+1)*interval).
func Covers(s domain.DailySchedule, slot, interval int) bool {
	slotStart := slot * interval
	slotEnd := slotStart + interval

	if s.IsFullDay() {
		return true
	}
	if !s.IsOvernight() {
		return overlaps(slotStart, slotEnd, s.StartMinute, s.EndMinute)
	}
	// Overnight, e.g. 22:00 -> 06:00.
	return overlaps(slotStart, slotEnd, s.StartMinute, domain.MinutesPerDay) ||
		overlaps(slotStart, slotEnd, 0, s.EndMinute)
}

// overlaps is half-open interval overlap.
func overlaps(slotStart, slotEnd, rangeStart, rangeEnd int) bool {
	return slotStart < rangeEnd && slotEnd > rangeStart
}
