package validation

import "time"

// DateLayout is the wire format for birthdates.
const DateLayout = "2006-01-02"

const adultAge = 18

// AgeAt returns the whole-year age at now of someone born on birthdate:
// calendar-year subtraction, minus one when now's month/day precedes the
// birth month/day. Never computed from elapsed time, so leap years and year
// boundaries behave like a calendar, not like millisecond division.
func AgeAt(birthdate, now time.Time) int {
	age := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}
	return age
}

// IsAdultAt reports whether the ISO birthdate denotes someone at least 18
// years old at now. Unparseable input counts as not adult.
func IsAdultAt(birthdate string, now time.Time) bool {
	dob, err := time.Parse(DateLayout, birthdate)
	if err != nil {
		return false
	}
	return AgeAt(dob, now) >= adultAge
}
