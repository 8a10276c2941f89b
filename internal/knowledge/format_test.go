package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	ev := &Event{Name: "Codeology", Department: "CSE", Date: "April 8, 2025", StartTime: "10:00 AM", Price: 100}
	assert.Equal(t, "🎯 Codeology (CSE) · April 8, 2025 · 10:00 AM · ₹100", Summary(ev))

	free := &Event{Name: "Pitch Arena", Department: "CDIPS", Date: "April 10, 2025", StartTime: "10:00 AM"}
	assert.Contains(t, Summary(free), "Free")
}

func TestDetail(t *testing.T) {
	ev := &Event{
		Name: "Robo Rumble", Department: "ME", Venue: "Main Arena",
		Days: []int{1, 3}, StartTime: "12:00 PM", EndTime: "6:00 PM",
		Date: "April 8, 2025", Price: 250, TeamSize: "3-5", Prize: "Rs 40,000",
	}
	out := Detail(ev)
	assert.Contains(t, out, "Robo Rumble")
	assert.Contains(t, out, "Mechanical Engineering")
	assert.Contains(t, out, "day 1 & 3")
	assert.Contains(t, out, "₹250 per entry")
	assert.Contains(t, out, "Team size: 3-5")
}
