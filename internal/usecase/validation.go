package usecase

import "strings"

// Field-format rules shared by the user and seller inputs. All checks are
// pure; rule order lives in the per-input Validate methods.
const (
	phoneLength             = 10
	pincodeLength           = 6
	gstnLength              = 15
	minPasswordLength       = 8
	minNameLength           = 5
	minPickupLocationLength = 10
)

// validPhone reports whether the value is exactly ten digits.
func validPhone(phone string) bool {
	return allDigits(strings.TrimSpace(phone), phoneLength)
}

// validPincode reports whether the value is exactly six digits.
func validPincode(pincode string) bool {
	return allDigits(strings.TrimSpace(pincode), pincodeLength)
}

// validEmail mirrors the minimal original rule: the trimmed value must
// contain an '@'. Full RFC validation is deliberately out of scope.
func validEmail(email string) bool {
	return strings.Contains(strings.TrimSpace(email), "@")
}

// validPassword requires at least eight characters after trimming.
func validPassword(password string) bool {
	return len(strings.TrimSpace(password)) >= minPasswordLength
}

func allDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
