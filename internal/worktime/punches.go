package worktime

import "time"

type Field string

const (
	FieldArrivalMorning   Field = "arrival_morning"
	FieldLunchDeparture   Field = "lunch_departure"
	FieldLunchReturn      Field = "lunch_return"
	FieldArrivalEvening   Field = "arrival_evening"
	FieldDepartureEvening Field = "departure_evening"
)

// Punches holds the five optional punches of one day. They form three pairs:
// morning (arrival_morning, lunch_departure), dinner (lunch_departure,
// lunch_return) and evening (arrival_evening, departure_evening). Dinner is a
// break and never counts as worked time.
type Punches struct {
	ArrivalMorning   *TimeOfDay
	LunchDeparture   *TimeOfDay
	LunchReturn      *TimeOfDay
	ArrivalEvening   *TimeOfDay
	DepartureEvening *TimeOfDay
}

type punchPair struct {
	block      string
	startField Field
	endField   Field
	start      *TimeOfDay
	end        *TimeOfDay
}

func (p Punches) pairs() []punchPair {
	return []punchPair{
		{block: "morning", startField: FieldArrivalMorning, endField: FieldLunchDeparture, start: p.ArrivalMorning, end: p.LunchDeparture},
		{block: "dinner", startField: FieldLunchDeparture, endField: FieldLunchReturn, start: p.LunchDeparture, end: p.LunchReturn},
		{block: "evening", startField: FieldArrivalEvening, endField: FieldDepartureEvening, start: p.ArrivalEvening, end: p.DepartureEvening},
	}
}

func (p Punches) Morning() time.Duration {
	return Duration(p.ArrivalMorning, p.LunchDeparture)
}

func (p Punches) Evening() time.Duration {
	return Duration(p.ArrivalEvening, p.DepartureEvening)
}
