package enums

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent      RoleType = "student"
	RoleCollegeAdmin RoleType = "college_admin"
	RoleCollegeRep   RoleType = "college_rep"
)

// Valid reports whether r is a known role
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleCollegeAdmin, RoleCollegeRep:
		return true
	}
	return false
}
