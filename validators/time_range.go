package validators

import (
	"errors"
	"time"
)

var (
	ErrTimeInvalid   = errors.New("time must be in HH:MM format")
	ErrTimeRangeFlat = errors.New("end time must be after start time")
)

// ClockValidator checks a wall-clock "HH:MM" string. Seconds are tolerated
// since some time inputs send them
func ClockValidator(t string) error {
	if _, err := time.Parse("15:04", t); err == nil {
		return nil
	}

	if _, err := time.Parse("15:04:05", t); err == nil {
		return nil
	}

	return ErrTimeInvalid
}

// CanonicalClock reparses an accepted wall-clock string into the zero-padded
// "15:04" form. Events are stored and sorted in this form, a raw "9:00"
// would sort after "18:00" as a string
func CanonicalClock(t string) (string, error) {
	v, err := parseClock(t)
	if err != nil {
		return "", ErrTimeInvalid
	}

	return v.Format("15:04"), nil
}

// TimeRangeValidator checks both bounds and that end is strictly after start
func TimeRangeValidator(start, end string) error {
	if err := ClockValidator(start); err != nil {
		return err
	}

	if err := ClockValidator(end); err != nil {
		return err
	}

	s, _ := parseClock(start)
	e, _ := parseClock(end)

	if !e.After(s) {
		return ErrTimeRangeFlat
	}

	return nil
}

func parseClock(t string) (time.Time, error) {
	if v, err := time.Parse("15:04", t); err == nil {
		return v, nil
	}

	return time.Parse("15:04:05", t)
}
