package validator

import (
	"ctchen222/tictactoe-cli/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	// "mark" accepts a board cell: empty, X or O.
	if err := validate.RegisterValidation("mark", validateMark); err != nil {
		panic(err)
	}
}

func validateMark(fl validator.FieldLevel) bool {
	switch game.PlayerMark(fl.Field().String()) {
	case game.None, game.PlayerX, game.PlayerO:
		return true
	default:
		return false
	}
}

func GetValidator() *validator.Validate {
	return validate
}
