package validator

import (
	"testing"

	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name        string
		input       any
		wantDetails string
	}{
		{
			name:  "valid login",
			input: &usecase.LoginInput{Email: "ana@chaski.com", Password: "secreto1"},
		},
		{
			name:        "bad email",
			input:       &usecase.LoginInput{Email: "ana", Password: "secreto1"},
			wantDetails: "email: email",
		},
		{
			name:        "short password",
			input:       &usecase.RegisterInput{Email: "ana@chaski.com", Password: "123", Name: "Ana"},
			wantDetails: "password: min=6",
		},
		{
			name:        "rating out of range",
			input:       &usecase.SubmitRatingInput{RatedUserID: "luis", Rating: 6},
			wantDetails: "rating: max=5",
		},
		{
			name:        "price must be positive",
			input:       &usecase.CreateProductInput{Name: "Api", Category: "bebidas", Price: decimal.Zero},
			wantDetails: "price: gt=0",
		},
		{
			name:  "positive price",
			input: &usecase.CreateProductInput{Name: "Api", Category: "bebidas", Price: decimal.RequireFromString("10.99")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantDetails == "" {
				assert.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Details(), tt.wantDetails)
		})
	}
}
