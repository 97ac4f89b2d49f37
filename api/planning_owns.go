package api

import (
	"errors"

	"twitchplanner/backend/model"

	"gorm.io/gorm"
)

// planningOwned resolves a planning by id and owner in one predicate. A
// planning that exists but belongs to someone else looks exactly like one
// that doesn't exist
func (a *API) planningOwned(planningID, userID string) (planning model.Planning, found bool, err error) {
	err = a.DB.
		Where("id = ? AND user_id = ?", planningID, userID).
		First(&planning).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return planning, false, nil
		}

		return planning, false, err
	}

	return planning, true, nil
}
