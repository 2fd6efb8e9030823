package domain

// EmployeeStatus is the HR status of an employee.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeInactive EmployeeStatus = "Inactive"
)

// Employee is a user of the attendance console: either one of the role seed
// accounts or an employee created through face enrollment.
type Employee struct {
	ID          string         `json:"id"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Email       string         `json:"email"`
	Department  string         `json:"department"`
	Designation string         `json:"designation"`
	EmployeeID  string         `json:"employee_id"`
	Status      EmployeeStatus `json:"status"`
	JoinedOn    string         `json:"joined_on"`
	Role        Role           `json:"role"`
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
