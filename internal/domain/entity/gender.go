package entity

// Gender enumerates the accepted gender values for a user account.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOthers Gender = "others"
)

// IsValid reports whether the value is one of the accepted genders.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOthers:
		return true
	default:
		return false
	}
}

// String returns the gender as a plain string.
func (g Gender) String() string {
	return string(g)
}
