package probe

// Role is one of the closed set of account roles in the waste-management
// service.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCollector Role = "collector"
	RoleResident  Role = "resident"
)

// Credential is a single fixture account. The roster is compiled in; none of
// this is user input.
type Credential struct {
	Email    string
	Password string
	Role     Role
}

// DefaultRoster returns the canonical smoke-test accounts, in probe order.
func DefaultRoster() []Credential {
	return []Credential{
		{Email: "admin@wastemanagement.com", Password: "Admin123!", Role: RoleAdmin},
		{Email: "john.collector@wastemanagement.com", Password: "Collector123!", Role: RoleCollector},
		{Email: "alice.resident@email.com", Password: "Resident123!", Role: RoleResident},
	}
}
