// Package intake turns the farm information form into a FarmProfile.
// It only checks that every field is present and that the soil and crop
// values come from the offered choice lists.
package intake

import (
	stderrors "errors"
	"farm-advisor/domain"
	"farm-advisor/errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = newValidator()

// Form mirrors the four inputs of the farm information screen.
type Form struct {
	PlotSize string `form:"plotSize" validate:"required"`
	SoilType string `form:"soilType" validate:"required,soil"`
	Location string `form:"location" validate:"required"`
	CropType string `form:"cropType" validate:"required,crop"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})
	// Registration only fails on an empty tag name.
	_ = v.RegisterValidation("soil", choiceOf(domain.SoilTypes))
	_ = v.RegisterValidation("crop", choiceOf(domain.CropTypes))
	return v
}

func choiceOf(choices []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return IsChoice(choices, fl.Field().String())
	}
}

// IsChoice reports whether value matches one of the choices, ignoring case.
func IsChoice(choices []string, value string) bool {
	return lo.ContainsBy(choices, func(choice string) bool {
		return strings.EqualFold(choice, value)
	})
}

// Submit validates the form and returns the profile to hand over to the session.
// Soil and crop values are stored lower-case.
func Submit(form Form) (domain.FarmProfile, error) {
	form = Form{
		PlotSize: strings.TrimSpace(form.PlotSize),
		SoilType: strings.ToLower(strings.TrimSpace(form.SoilType)),
		Location: strings.TrimSpace(form.Location),
		CropType: strings.ToLower(strings.TrimSpace(form.CropType)),
	}
	if err := validate.Struct(form); err != nil {
		return domain.FarmProfile{}, toDomainError(err)
	}
	return domain.FarmProfile{
		PlotSize: form.PlotSize,
		SoilType: form.SoilType,
		Location: form.Location,
		CropType: form.CropType,
	}, nil
}

// Validate is the presence check applied to a profile built elsewhere.
func Validate(profile domain.FarmProfile) error {
	fields := []lo.Tuple2[string, string]{
		lo.T2("plotSize", profile.PlotSize),
		lo.T2("soilType", profile.SoilType),
		lo.T2("location", profile.Location),
		lo.T2("cropType", profile.CropType),
	}
	for _, f := range fields {
		if strings.TrimSpace(f.B) == "" {
			return fmt.Errorf("%w: %s", errors.ErrMissingField, f.A)
		}
	}
	return nil
}

func toDomainError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}
	first := fieldErrors[0]
	if first.Tag() == "required" {
		return fmt.Errorf("%w: %s", errors.ErrMissingField, first.Field())
	}
	return fmt.Errorf("%w: %s=%q", errors.ErrInvalidChoice, first.Field(), first.Value())
}
