package validators

import (
	"errors"

	"twitchplanner/backend/model"
)

var ErrDayInvalid = errors.New("day must be one of Monday through Sunday")

func DayValidator(d string) error {
	if !model.ValidDay(d) {
		return ErrDayInvalid
	}

	return nil
}
