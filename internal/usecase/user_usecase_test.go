package usecase

import (
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterUserInput() *RegisterUserInput {
	return &RegisterUserInput{
		FirstName: "Ramesh",
		LastName:  "Kumar",
		Gender:    "male",
		Phone:     "9876543210",
		Email:     "ramesh@example.com",
		Password:  "password123",
	}
}

func TestRegisterUserInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *RegisterUserInput)
		wantMsg string
	}{
		{
			name:   "valid input",
			mutate: func(in *RegisterUserInput) {},
		},
		{
			name:    "missing field",
			mutate:  func(in *RegisterUserInput) { in.Email = "" },
			wantMsg: "All fields are required",
		},
		{
			name:    "blank firstname",
			mutate:  func(in *RegisterUserInput) { in.FirstName = "   " },
			wantMsg: "Firstname should not be empty",
		},
		{
			name:    "unknown gender",
			mutate:  func(in *RegisterUserInput) { in.Gender = "robot" },
			wantMsg: "Invalid gender",
		},
		{
			name:    "phone too short",
			mutate:  func(in *RegisterUserInput) { in.Phone = "12345" },
			wantMsg: "Invalid phone number",
		},
		{
			name:    "phone with letters",
			mutate:  func(in *RegisterUserInput) { in.Phone = "98765a3210" },
			wantMsg: "Invalid phone number",
		},
		{
			name:    "email without at sign",
			mutate:  func(in *RegisterUserInput) { in.Email = "ramesh.example.com" },
			wantMsg: "Invalid email",
		},
		{
			name:    "short password",
			mutate:  func(in *RegisterUserInput) { in.Password = "short" },
			wantMsg: "Password should be at least 8 characters long",
		},
		{
			name: "missing field reported before invalid format",
			mutate: func(in *RegisterUserInput) {
				in.Phone = "bad"
				in.Email = ""
			},
			wantMsg: "All fields are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegisterUserInput()
			tt.mutate(input)

			err := input.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, tt.wantMsg, appErr.Message())
		})
	}
}

func TestLoginUserInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   LoginUserInput
		wantMsg string
	}{
		{
			name:  "login by phone",
			input: LoginUserInput{Phone: "9876543210", Password: "password123"},
		},
		{
			name:  "login by email",
			input: LoginUserInput{Email: "ramesh@example.com", Password: "password123"},
		},
		{
			name:    "no identifier",
			input:   LoginUserInput{Password: "password123"},
			wantMsg: "Phone or email is required",
		},
		{
			name:    "bad phone",
			input:   LoginUserInput{Phone: "123", Password: "password123"},
			wantMsg: "Invalid phone number",
		},
		{
			name:    "missing password",
			input:   LoginUserInput{Phone: "9876543210"},
			wantMsg: "Password is required",
		},
		{
			name:    "short password",
			input:   LoginUserInput{Phone: "9876543210", Password: "short"},
			wantMsg: "Password should be at least 8 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantMsg, appErr.Message())
		})
	}
}

func TestUpdateUserInput_Validate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("no fields", func(t *testing.T) {
		err := (&UpdateUserInput{}).Validate()
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "At least one field should be updated", appErr.Message())
	})

	t.Run("single valid field", func(t *testing.T) {
		assert.NoError(t, (&UpdateUserInput{FirstName: strPtr("Ramesh")}).Validate())
	})

	t.Run("present but invalid field", func(t *testing.T) {
		err := (&UpdateUserInput{Phone: strPtr("123")}).Validate()
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Invalid phone number", appErr.Message())
	})
}
