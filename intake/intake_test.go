package intake

import (
	"farm-advisor/domain"
	"farm-advisor/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		PlotSize: "10",
		SoilType: "Clay",
		Location: "Springfield",
		CropType: "Wheat",
	}
}

func TestSubmit_ValidForm(t *testing.T) {
	req := require.New(t)

	profile, err := Submit(validForm())

	req.NoError(err)
	req.Equal(domain.FarmProfile{
		PlotSize: "10",
		SoilType: "clay",
		Location: "Springfield",
		CropType: "wheat",
	}, profile)
}

func TestSubmit_MissingField(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(f *Form)
		field string
	}{
		{name: "plot size", edit: func(f *Form) { f.PlotSize = "" }, field: "plotSize"},
		{name: "soil type", edit: func(f *Form) { f.SoilType = "" }, field: "soilType"},
		{name: "location whitespace only", edit: func(f *Form) { f.Location = "   " }, field: "location"},
		{name: "crop type", edit: func(f *Form) { f.CropType = "\t" }, field: "cropType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			form := validForm()
			tt.edit(&form)

			profile, err := Submit(form)

			req.ErrorIs(err, errors.ErrMissingField)
			req.Contains(err.Error(), tt.field)
			req.Equal(domain.FarmProfile{}, profile)
		})
	}
}

func TestSubmit_UnknownChoice(t *testing.T) {
	req := require.New(t)

	form := validForm()
	form.SoilType = "gravel"
	_, err := Submit(form)
	req.ErrorIs(err, errors.ErrInvalidChoice)
	req.Contains(err.Error(), "soilType")

	form = validForm()
	form.CropType = "bananas"
	_, err = Submit(form)
	req.ErrorIs(err, errors.ErrInvalidChoice)
	req.Contains(err.Error(), "cropType")
}

func TestSubmit_EveryOfferedChoiceIsAccepted(t *testing.T) {
	req := require.New(t)
	req.Len(domain.SoilTypes, 6)
	req.Len(domain.CropTypes, 9)

	for _, soil := range domain.SoilTypes {
		for _, crop := range domain.CropTypes {
			form := validForm()
			form.SoilType = soil
			form.CropType = crop
			_, err := Submit(form)
			req.NoError(err, "soil=%s crop=%s", soil, crop)
		}
	}
}

func TestSubmit_NoFormatCheckOnFreeText(t *testing.T) {
	req := require.New(t)
	form := validForm()
	form.PlotSize = "ten and a half"
	form.Location = "?"

	profile, err := Submit(form)

	req.NoError(err)
	req.Equal("ten and a half", profile.PlotSize)
}

func TestValidate(t *testing.T) {
	req := require.New(t)

	req.NoError(Validate(domain.FarmProfile{PlotSize: "1", SoilType: "x", Location: "y", CropType: "z"}))

	err := Validate(domain.FarmProfile{PlotSize: "1", SoilType: "x", Location: " ", CropType: "z"})
	req.ErrorIs(err, errors.ErrMissingField)
	req.Contains(err.Error(), "location")
}
