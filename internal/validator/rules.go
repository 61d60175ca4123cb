package validator

import (
	"log"

	"roomly_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error, not a
			// request error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-room-type", validateRoomType)
	mustRegister("is-application-status", validateApplicationStatus)
}

func validateRoomType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is the job of 'required'
	}

	switch models.RoomType(value) {
	case models.RoomTypeBedroom, models.RoomTypeStudio, models.RoomTypeSharedBedroom:
		return true
	}
	return false
}

// validateApplicationStatus accepts only the two legal target statuses of a
// review decision. "pending" is the initial state, never a target.
func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusApproved, models.ApplicationStatusRejected:
		return true
	}
	return false
}
