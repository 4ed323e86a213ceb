package domain

// User roles.
const (
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

// User is read-only reference data. Identity is the name, matched
// case-sensitively.
type User struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
