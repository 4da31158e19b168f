package draft

import (
	"errors"
	"testing"

	"github.com/dxbsouq/souq-backend/internal/apperror"
	"github.com/stretchr/testify/require"
)

func validMotorsForm() Fields {
	return Fields{
		"motorType":   "Car",
		"emirate":     "Dubai",
		"makeModel":   "Toyota Camry",
		"price":       "45000",
		"phoneNumber": "+971501234567",
	}
}

func TestValidateFormMotors(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(f Fields)
		expectedMissing []string
		expectedInvalid []string
	}{
		{
			name:   "minimal required set passes",
			mutate: func(f Fields) {},
		},
		{
			name: "full form with optional fields passes",
			mutate: func(f Fields) {
				f["trim"] = "SE"
				f["regionalSpecs"] = "GCC"
				f["year"] = "2020"
				f["kilometres"] = "38000"
				f["bodyType"] = "Sedan"
				f["isInsured"] = true
			},
		},
		{
			name: "all missing fields are reported, not just the first",
			mutate: func(f Fields) {
				delete(f, "motorType")
				delete(f, "makeModel")
			},
			expectedMissing: []string{"makeModel", "motorType"},
		},
		{
			name: "whitespace-only value counts as missing",
			mutate: func(f Fields) {
				f["price"] = "   "
			},
			expectedMissing: []string{"price"},
		},
		{
			name: "phone without country prefix is invalid",
			mutate: func(f Fields) {
				f["phoneNumber"] = "0501234567"
			},
			expectedInvalid: []string{"phoneNumber"},
		},
		{
			name: "phone without any prefix is invalid",
			mutate: func(f Fields) {
				f["phoneNumber"] = "501234567"
			},
			expectedInvalid: []string{"phoneNumber"},
		},
		{
			name: "unknown field is rejected",
			mutate: func(f Fields) {
				f["horsepower"] = "300"
			},
			expectedInvalid: []string{"horsepower"},
		},
		{
			name: "missing and invalid are reported together",
			mutate: func(f Fields) {
				delete(f, "emirate")
				f["phoneNumber"] = "12345"
			},
			expectedMissing: []string{"emirate"},
			expectedInvalid: []string{"phoneNumber"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validMotorsForm()
			tt.mutate(fields)

			err := ValidateForm(CategoryMotors, fields)

			if len(tt.expectedMissing) == 0 && len(tt.expectedInvalid) == 0 {
				require.NoError(t, err)
				return
			}

			var valErr *apperror.ValidationError
			require.True(t, errors.As(err, &valErr))
			require.Equal(t, tt.expectedMissing, valErr.MissingFields)
			require.Equal(t, tt.expectedInvalid, valErr.InvalidFields)
		})
	}
}

func TestValidateFormOtherCategories(t *testing.T) {
	err := ValidateForm(CategoryJobs, Fields{})

	var valErr *apperror.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Contains(t, valErr.MissingFields, "jobTitle")
	require.Contains(t, valErr.MissingFields, "phoneNumber")

	err = ValidateForm(CategoryPropertyRent, Fields{
		"propertyType":  "Apartment",
		"emirate":       "Sharjah",
		"bedrooms":      "2",
		"rentFrequency": "Yearly",
		"price":         "39999",
		"phoneNumber":   "+971529876543",
	})
	require.NoError(t, err)
}

func TestValidateSummary(t *testing.T) {
	err := ValidateSummary(CategoryMotors, Fields{})

	var valErr *apperror.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Equal(t, []string{"postTitle"}, valErr.MissingFields)

	err = ValidateSummary(CategoryMotors, Fields{
		"postTitle":         "2020 Camry",
		"fuelType":          "Petrol",
		"technicalFeatures": []string{"Cruise Control", "Bluetooth"},
	})
	require.NoError(t, err)
}

func TestNormalizeSummary(t *testing.T) {
	got := NormalizeSummary(Fields{
		"postTitle":         "2020 Camry",
		"technicalFeatures": []any{"Bluetooth", "Cruise Control", "Bluetooth"},
		"amenities":         []string{"Parking", "Parking", "Pool"},
	})

	require.Equal(t, "2020 Camry", got["postTitle"])
	require.Equal(t, []string{"Bluetooth", "Cruise Control"}, got["technicalFeatures"])
	require.Equal(t, []string{"Parking", "Pool"}, got["amenities"])
}
