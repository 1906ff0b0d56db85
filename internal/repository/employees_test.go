package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
)

func validEmployee(empNo string) *domain.Employee {
	return &domain.Employee{
		EmpNo:        empNo,
		DisplayName:  "Priya Patel",
		Email:        "priya.patel@btspl.com",
		EmployeeType: domain.EmployeeTypePermanent,
		Department:   "HR",
	}
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()

	t.Run("assigns an id", func(t *testing.T) {
		repo := newTestRepository()

		employee := validEmployee("BTSPL001")
		require.NoError(t, repo.CreateEmployee(employee))
		require.NotEmpty(t, employee.ID)
	})

	t.Run("rejects a duplicate employee number", func(t *testing.T) {
		repo := newTestRepository()

		require.NoError(t, repo.CreateEmployee(validEmployee("BTSPL002")))
		require.ErrorIs(t, repo.CreateEmployee(validEmployee("BTSPL002")), ErrDuplicateEmpNo)
		// the check is case-insensitive
		require.ErrorIs(t, repo.CreateEmployee(validEmployee("btspl002")), ErrDuplicateEmpNo)
	})
}

func TestUpdateEmployee(t *testing.T) {
	t.Parallel()

	t.Run("unknown id fails", func(t *testing.T) {
		repo := newTestRepository()

		employee := validEmployee("BTSPL010")
		employee.ID = "no-such-id"
		require.ErrorIs(t, repo.UpdateEmployee(employee), ErrNotFound)
	})

	t.Run("keeping your own number is fine", func(t *testing.T) {
		repo := newTestRepository()

		employee := validEmployee("BTSPL011")
		require.NoError(t, repo.CreateEmployee(employee))

		employee.DisplayName = "Priya P."
		require.NoError(t, repo.UpdateEmployee(employee))
	})

	t.Run("taking another employee's number fails", func(t *testing.T) {
		repo := newTestRepository()

		first := validEmployee("BTSPL012")
		require.NoError(t, repo.CreateEmployee(first))
		second := validEmployee("BTSPL013")
		require.NoError(t, repo.CreateEmployee(second))

		second.EmpNo = "BTSPL012"
		require.ErrorIs(t, repo.UpdateEmployee(second), ErrDuplicateEmpNo)
	})
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()

	t.Run("blocked while assets are assigned", func(t *testing.T) {
		repo := newTestRepository()

		employee := validEmployee("BTSPL020")
		require.NoError(t, repo.CreateEmployee(employee))

		asset := validAsset("LPT-100")
		require.NoError(t, repo.CreateAsset(asset))
		_, err := repo.AssignAsset(asset.ID, employee.ID, AssignmentFields{PrimaryLocation: "Mumbai", UserDepartment: "HR"})
		require.NoError(t, err)

		require.ErrorIs(t, repo.DeleteEmployee(employee.ID), ErrEmployeeHasAssets)
		require.Equal(t, 1, repo.AssignedAssetCount(employee.ID))

		// unassigning the asset unblocks the deletion
		_, err = repo.AssignAsset(asset.ID, "", AssignmentFields{})
		require.NoError(t, err)
		require.NoError(t, repo.DeleteEmployee(employee.ID))

		_, err = repo.GetEmployeeByID(employee.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown id fails", func(t *testing.T) {
		repo := newTestRepository()
		require.ErrorIs(t, repo.DeleteEmployee("no-such-id"), ErrNotFound)
	})
}

func TestGetAllEmployeesOrder(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()
	for _, empNo := range []string{"BTSPL032", "BTSPL030", "BTSPL031"} {
		require.NoError(t, repo.CreateEmployee(validEmployee(empNo)))
	}

	employees := repo.GetAllEmployees()
	require.Len(t, employees, 3)
	require.Equal(t, "BTSPL030", employees[0].EmpNo)
	require.Equal(t, "BTSPL031", employees[1].EmpNo)
	require.Equal(t, "BTSPL032", employees[2].EmpNo)
}
