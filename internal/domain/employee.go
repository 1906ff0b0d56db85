package domain

type EmployeeType string

const (
	EmployeeTypePermanent   EmployeeType = "Permanent"
	EmployeeTypeContractual EmployeeType = "Contractual"
)

type Employee struct {
	ID           string       `json:"id"`
	EmpNo        string       `json:"empNo"`
	DisplayName  string       `json:"displayName"`
	Email        string       `json:"email"`
	EmployeeType EmployeeType `json:"employeeType"`
	Department   string       `json:"department"`
	SubFunction  string       `json:"subFunction,omitempty"`
}
