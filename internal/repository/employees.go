package repository

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
)

// empNoInUse reports whether another employee already carries the number.
// Caller must hold employeesMu.
func (r *Repository) empNoInUse(empNo, excludeID string) bool {
	for _, employee := range r.employees {
		if employee.ID == excludeID {
			continue
		}
		if strings.EqualFold(employee.EmpNo, empNo) {
			return true
		}
	}
	return false
}

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	r.employeesMu.Lock()
	defer r.employeesMu.Unlock()

	if r.empNoInUse(employee.EmpNo, "") {
		return ErrDuplicateEmpNo
	}

	employee.ID = uuid.NewString()
	clone := *employee
	r.employees[employee.ID] = &clone

	return nil
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
	r.employeesMu.Lock()
	defer r.employeesMu.Unlock()

	if _, ok := r.employees[employee.ID]; !ok {
		return ErrNotFound
	}
	if r.empNoInUse(employee.EmpNo, employee.ID) {
		return ErrDuplicateEmpNo
	}

	clone := *employee
	r.employees[employee.ID] = &clone

	return nil
}

// DeleteEmployee refuses to delete an employee while any asset still
// references them; the caller must unassign those assets first. Assets keep
// only a weak reference, so this guard is the whole of the referential
// integrity story.
func (r *Repository) DeleteEmployee(id string) error {
	r.employeesMu.Lock()
	defer r.employeesMu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return ErrNotFound
	}

	r.assetsMu.RLock()
	assigned := false
	for _, asset := range r.assets {
		if asset.EmployeeID == id {
			assigned = true
			break
		}
	}
	r.assetsMu.RUnlock()

	if assigned {
		return ErrEmployeeHasAssets
	}

	delete(r.employees, id)

	return nil
}

func (r *Repository) GetEmployeeByID(id string) (*domain.Employee, error) {
	r.employeesMu.RLock()
	defer r.employeesMu.RUnlock()

	employee, ok := r.employees[id]
	if !ok {
		return nil, ErrNotFound
	}

	clone := *employee
	return &clone, nil
}

// GetAllEmployees returns the directory ordered by employee number.
func (r *Repository) GetAllEmployees() []*domain.Employee {
	r.employeesMu.RLock()
	defer r.employeesMu.RUnlock()

	employees := make([]*domain.Employee, 0, len(r.employees))
	for _, employee := range r.employees {
		clone := *employee
		employees = append(employees, &clone)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].EmpNo < employees[j].EmpNo })

	return employees
}

// AssignedAssetCount reports how many assets currently reference the
// employee. Used by handlers to explain a blocked deletion.
func (r *Repository) AssignedAssetCount(employeeID string) int {
	r.assetsMu.RLock()
	defer r.assetsMu.RUnlock()

	count := 0
	for _, asset := range r.assets {
		if asset.EmployeeID == employeeID {
			count++
		}
	}

	return count
}
