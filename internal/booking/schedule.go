package booking

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// DateOption is one bookable day and its time slots.
type DateOption struct {
	Date  string
	Slots []string
}

// Schedule is the fixed list of dates offered for a service.
type Schedule []DateOption

// Find returns the option for the given date.
func (s Schedule) Find(date string) (DateOption, bool) {
	return lo.Find(s, func(d DateOption) bool { return d.Date == date })
}

// Dates returns the offered dates in order.
func (s Schedule) Dates() []string {
	return lo.Map(s, func(d DateOption, _ int) string { return d.Date })
}

var defaultSchedule = Schedule{
	{Date: "Tomorrow", Slots: []string{"9:00 AM", "11:30 AM", "2:00 PM"}},
	{Date: "Wednesday", Slots: []string{"10:00 AM", "1:30 PM", "4:00 PM"}},
	{Date: "Thursday", Slots: []string{"9:30 AM", "12:00 PM", "3:30 PM"}},
}

var serviceSchedules = map[string]Schedule{
	"2": {
		{Date: "Tomorrow", Slots: []string{"8:30 AM", "10:30 AM", "3:00 PM"}},
		{Date: "Wednesday", Slots: []string{"9:00 AM", "12:30 PM", "4:30 PM"}},
		{Date: "Friday", Slots: []string{"8:00 AM", "11:00 AM", "2:30 PM"}},
	},
	"3": {
		{Date: "Today", Slots: []string{"1:00 PM", "3:30 PM", "5:00 PM"}},
		{Date: "Tomorrow", Slots: []string{"9:30 AM", "11:00 AM", "2:30 PM"}},
		{Date: "Thursday", Slots: []string{"10:30 AM", "1:00 PM", "4:30 PM"}},
	},
}

// ScheduleFor returns the dates offered for a service.
func ScheduleFor(serviceID string) Schedule {
	if s, ok := serviceSchedules[serviceID]; ok {
		return s
	}
	return defaultSchedule
}

// FormatAppointmentDate renders a stored appointment_date for display.
// RFC3339 timestamps are formatted; anything else, like "Tomorrow 11:30 AM",
// is shown as stored.
func FormatAppointmentDate(value *string) string {
	if value == nil || *value == "" {
		return "No date scheduled"
	}
	if strings.Contains(*value, "T") {
		if t, err := time.Parse(time.RFC3339, *value); err == nil {
			return t.Format("Monday, January 2, 3:04 PM")
		}
	}
	return *value
}
