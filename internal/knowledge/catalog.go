// Package knowledge provides the static event catalog used by the voice
// pipeline. Everything here is built once at startup and never mutated, so
// concurrent lookups need no locking.
package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Event is one fest event. The catalog is read-only at runtime.
type Event struct {
	Name        string   `json:"name" yaml:"name"`
	Department  string   `json:"department" yaml:"department"`
	Venue       string   `json:"venue" yaml:"venue"`
	Days        []int    `json:"days" yaml:"days"`
	StartTime   string   `json:"start_time" yaml:"start_time"`
	EndTime     string   `json:"end_time" yaml:"end_time"`
	Date        string   `json:"date" yaml:"date"`
	Price       int      `json:"price" yaml:"price"`
	MaxEntries  int      `json:"max_entries" yaml:"max_entries"`
	TeamSize    string   `json:"team_size" yaml:"team_size"`
	Prize       string   `json:"prize" yaml:"prize"`
	Tags        []string `json:"tags" yaml:"tags"`
	Mishearings []string `json:"-" yaml:"mishearings"`
}

// Departments maps department codes to display names.
var Departments = map[string]string{
	"CSE":   "Computer Science & Engineering",
	"ECE":   "Electronics & Communication Engineering",
	"EE":    "Electrical Engineering",
	"ME":    "Mechanical Engineering",
	"CE":    "Civil Engineering",
	"CHE":   "Chemical Engineering",
	"CDIPS": "Centre for Design, Innovation & Product Simulation",
}

// departmentAliases maps common spoken names to department codes.
var departmentAliases = map[string]string{
	"computer":    "CSE",
	"computers":   "CSE",
	"cs":          "CSE",
	"comp":        "CSE",
	"coding":      "CSE",
	"software":    "CSE",
	"electronics": "ECE",
	"electrical":  "EE",
	"mech":        "ME",
	"mechanical":  "ME",
	"civil":       "CE",
	"chemical":    "CHE",
	"chem":        "CHE",
	"design":      "CDIPS",
	"innovation":  "CDIPS",
}

// DefaultCatalog returns the built-in event list for the current edition of
// the fest (day 1 = April 8, day 2 = April 9, day 3 = April 10).
func DefaultCatalog() []Event {
	return []Event{
		{
			Name: "Codeology", Department: "CSE", Venue: "CS Lab Complex",
			Days: []int{1, 2}, StartTime: "10:00 AM", EndTime: "5:00 PM",
			Date: "April 8, 2025", Price: 100, MaxEntries: 200, TeamSize: "1-2",
			Prize: "Rs 30,000 prize pool", Tags: []string{"coding", "algorithms"},
			Mishearings: []string{"cardiology", "codology", "code ology", "codeolgy"},
		},
		{
			Name: "Bug Smash", Department: "CSE", Venue: "CS Lab Complex",
			Days: []int{2}, StartTime: "11:00 AM", EndTime: "3:00 PM",
			Date: "April 9, 2025", Price: 50, MaxEntries: 150, TeamSize: "1",
			Prize: "Rs 10,000", Tags: []string{"coding", "debugging"},
			Mishearings: []string{"bugs mash", "bug mash"},
		},
		{
			Name: "Hack Horizon", Department: "CSE", Venue: "Innovation Hub",
			Days: []int{2, 3}, StartTime: "9:00 AM", EndTime: "9:00 AM",
			Date: "April 9, 2025", Price: 300, MaxEntries: 60, TeamSize: "2-4",
			Prize: "Rs 50,000 + incubation support", Tags: []string{"hackathon", "overnight"},
			Mishearings: []string{"hack arisen", "hacker izen", "hackorizon"},
		},
		{
			Name: "Robo Rumble", Department: "ME", Venue: "Main Arena",
			Days: []int{1, 3}, StartTime: "12:00 PM", EndTime: "6:00 PM",
			Date: "April 8, 2025", Price: 250, MaxEntries: 40, TeamSize: "3-5",
			Prize: "Rs 40,000", Tags: []string{"robotics", "combat"},
			Mishearings: []string{"robot rumble", "robo rumbel", "rover rumble"},
		},
		{
			Name: "Drone Derby", Department: "ME", Venue: "Sports Ground",
			Days: []int{3}, StartTime: "8:00 AM", EndTime: "12:00 PM",
			Date: "April 10, 2025", Price: 200, MaxEntries: 30, TeamSize: "1-2",
			Prize: "Rs 25,000", Tags: []string{"drones", "racing"},
			Mishearings: []string{"drown derby", "throne derby"},
		},
		{
			Name: "Circuit Craze", Department: "ECE", Venue: "ECE Block, Room 104",
			Days: []int{1}, StartTime: "10:00 AM", EndTime: "4:00 PM",
			Date: "April 8, 2025", Price: 80, MaxEntries: 100, TeamSize: "2",
			Prize: "Rs 15,000", Tags: []string{"electronics", "circuits"},
			Mishearings: []string{"circus craze", "circuit crays"},
		},
		{
			Name: "Line Follower", Department: "ECE", Venue: "ECE Block Foyer",
			Days: []int{2}, StartTime: "10:00 AM", EndTime: "5:00 PM",
			Date: "April 9, 2025", Price: 150, MaxEntries: 50, TeamSize: "2-3",
			Prize: "Rs 20,000", Tags: []string{"robotics", "autonomous"},
			Mishearings: []string{"lion follower", "lane follower"},
		},
		{
			Name: "Watt Wars", Department: "EE", Venue: "EE Machines Lab",
			Days: []int{2}, StartTime: "11:00 AM", EndTime: "4:00 PM",
			Date: "April 9, 2025", Price: 60, MaxEntries: 80, TeamSize: "2",
			Prize: "Rs 12,000", Tags: []string{"electrical", "quiz"},
			Mishearings: []string{"what wars", "watt walls", "whatwars"},
		},
		{
			Name: "Bridge Blitz", Department: "CE", Venue: "Structures Lab",
			Days: []int{1}, StartTime: "9:30 AM", EndTime: "2:00 PM",
			Date: "April 8, 2025", Price: 100, MaxEntries: 60, TeamSize: "2-4",
			Prize: "Rs 18,000", Tags: []string{"civil", "modelling"},
			Mishearings: []string{"bridge bliss", "fridge blitz", "bridget's"},
		},
		{
			Name: "Chem Prix", Department: "CHE", Venue: "Chemistry Block",
			Days: []int{3}, StartTime: "10:00 AM", EndTime: "1:00 PM",
			Date: "April 10, 2025", Price: 70, MaxEntries: 90, TeamSize: "1-2",
			Prize: "Rs 10,000", Tags: []string{"chemistry", "quiz"},
			Mishearings: []string{"chem pricks", "camp rix", "chem prick"},
		},
		{
			Name: "Master Chef", Department: "CDIPS", Venue: "Open Air Theatre",
			Days: []int{2, 3}, StartTime: "12:00 PM", EndTime: "5:00 PM",
			Date: "April 9, 2025", Price: 120, MaxEntries: 40, TeamSize: "2-3",
			Prize: "Rs 15,000 + dinner vouchers", Tags: []string{"cooking", "fun"},
			Mishearings: []string{"masterchef", "master chief", "master shef"},
		},
		{
			Name: "Treasure Trail", Department: "CDIPS", Venue: "Campus Wide",
			Days: []int{1, 2, 3}, StartTime: "3:00 PM", EndTime: "7:00 PM",
			Date: "April 8, 2025", Price: 90, MaxEntries: 100, TeamSize: "3-5",
			Prize: "Rs 12,000", Tags: []string{"fun", "outdoor"},
			Mishearings: []string{"treasure trial", "pleasure trail"},
		},
		{
			Name: "Quiz Quest", Department: "CDIPS", Venue: "Central Auditorium",
			Days: []int{1}, StartTime: "2:00 PM", EndTime: "5:00 PM",
			Date: "April 8, 2025", Price: 50, MaxEntries: 120, TeamSize: "2",
			Prize: "Rs 8,000", Tags: []string{"quiz", "general"},
			Mishearings: []string{"quick quest", "quiz crest", "quizquest"},
		},
		{
			Name: "Pitch Arena", Department: "CDIPS", Venue: "Seminar Hall B",
			Days: []int{3}, StartTime: "10:00 AM", EndTime: "2:00 PM",
			Date: "April 10, 2025", Price: 0, MaxEntries: 25, TeamSize: "1-4",
			Prize: "Rs 35,000 seed grant", Tags: []string{"startup", "pitching"},
			Mishearings: []string{"peach arena", "pitch arina"},
		},
	}
}

// LoadCatalog reads an event catalog from a YAML file. Used to override the
// built-in list without a rebuild; the file replaces the catalog wholesale.
func LoadCatalog(path string) ([]Event, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var doc struct {
		Events []Event `yaml:"events"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Events) == 0 {
		return nil, fmt.Errorf("catalog %s contains no events", path)
	}
	return doc.Events, nil
}
