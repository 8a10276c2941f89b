package knowledge

import (
	"fmt"
	"strings"
)

// Summary renders a one-line description of an event.
func Summary(ev *Event) string {
	price := "Free"
	if ev.Price > 0 {
		price = fmt.Sprintf("₹%d", ev.Price)
	}
	return fmt.Sprintf("🎯 %s (%s) · %s · %s · %s", ev.Name, ev.Department, ev.Date, ev.StartTime, price)
}

// Detail renders a multi-line description of an event.
func Detail(ev *Event) string {
	price := "Free entry"
	if ev.Price > 0 {
		price = fmt.Sprintf("₹%d per entry", ev.Price)
	}
	dept := ev.Department
	if full, ok := Departments[ev.Department]; ok {
		dept = full
	}
	lines := []string{
		fmt.Sprintf("🎯 %s", ev.Name),
		fmt.Sprintf("🏛 Department: %s", dept),
		fmt.Sprintf("📍 Venue: %s", ev.Venue),
		fmt.Sprintf("🗓 %s, %s – %s (day %s)", ev.Date, ev.StartTime, ev.EndTime, joinDays(ev.Days)),
		fmt.Sprintf("💰 %s", price),
		fmt.Sprintf("🏆 Prize: %s", ev.Prize),
	}
	if ev.TeamSize != "" {
		lines = append(lines, fmt.Sprintf("👥 Team size: %s", ev.TeamSize))
	}
	return strings.Join(lines, "\n")
}

func joinDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, " & ")
}
