package validation

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Seat numbers are a row (1-999) followed by a letter. First and
// business cabins use A, B, D, E; economy uses A through F.
var seatNumberPattern = regexp.MustCompile(`^[1-9][0-9]{0,2}[A-F]$`)

// RegisterCustomValidators hooks domain validators into gin's binding
// engine. Must run once before the first request is bound.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}

	return v.RegisterValidation("seatnumber", func(fl validator.FieldLevel) bool {
		return seatNumberPattern.MatchString(fl.Field().String())
	})
}
