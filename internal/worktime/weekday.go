package worktime

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
	Sunday    Weekday = "SUN"
)

// AllWeekdays is ordered by rank, Monday first.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WorkWeek is the default set of days materialized for a new timesheet.
var WorkWeek = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayRank = map[Weekday]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

// Rank is the offset of the day from Monday. Unknown values sort last.
func (d Weekday) Rank() int {
	if r, ok := weekdayRank[d]; ok {
		return r
	}
	return len(weekdayRank)
}

func (d Weekday) Valid() bool {
	_, ok := weekdayRank[d]
	return ok
}

// Date returns the calendar date of d within the week starting at weekStart.
func (d Weekday) Date(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, d.Rank())
}

func ParseWeekday(v string) (Weekday, error) {
	d := Weekday(strings.ToUpper(strings.TrimSpace(v)))
	if !d.Valid() {
		return "", fmt.Errorf("invalid weekday %q", v)
	}
	return d, nil
}

// ParseWeekdays parses a comma separated list such as "MON,TUE,WED".
// Duplicates are dropped and the result is ordered by rank.
func ParseWeekdays(v string) ([]Weekday, error) {
	var days []Weekday
	for _, part := range strings.Split(v, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(days, d) {
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no weekdays in %q", v)
	}
	SortWeekdays(days)
	return days, nil
}

func SortWeekdays(days []Weekday) {
	slices.SortStableFunc(days, func(a, b Weekday) int { return a.Rank() - b.Rank() })
}

func WeekdayOf(t time.Time) Weekday {
	// time.Weekday starts the week on Sunday.
	return AllWeekdays[(int(t.Weekday())+6)%7]
}
