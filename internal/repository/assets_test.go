package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/btspl-dev/asset-tracker/backend/internal/config"
	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
)

func newTestRepository() *Repository {
	cfg := &config.Config{}
	cfg.Warranty.ExpiryHorizonDays = 30
	return NewRepository(cfg)
}

func validAsset(code string) *domain.Asset {
	return &domain.Asset{
		AssetCode:       code,
		AssetType:       domain.AssetTypeLaptop,
		Department:      "Engineering",
		Status:          domain.AssetStatusActive,
		Brand:           "Dell",
		Model:           "Latitude 5520",
		SerialNo:        "SN-" + code,
		HostName:        "HOST-" + code,
		BriefConfig:     "i7, 16GB RAM",
		Ownership:       domain.OwnershipOwned,
		PurchaseVendor:  "Dell India",
		DateOfPurchase:  time.Now().AddDate(-1, 0, 0),
		WarrantyEndDate: time.Now().AddDate(1, 0, 0),
		WarrantyType:    domain.WarrantyTypeWarranty,
		PrimaryLocation: "Bangalore",
		UserDepartment:  "Engineering",
	}
}

func TestCreateAsset(t *testing.T) {
	t.Parallel()

	t.Run("assigns identity and derivations", func(t *testing.T) {
		repo := newTestRepository()

		asset := validAsset("LPT-001")
		require.NoError(t, repo.CreateAsset(asset))

		require.NotEmpty(t, asset.ID)
		require.Equal(t, 1, asset.SNo)
		require.False(t, asset.CreatedAt.IsZero())
		require.Equal(t, asset.CreatedAt, asset.UpdatedAt)
		require.Equal(t, domain.WarrantyStatusActive, asset.WarrantyStatus)

		second := validAsset("LPT-002")
		require.NoError(t, repo.CreateAsset(second))
		require.Equal(t, 2, second.SNo)
	})

	t.Run("derives warranty status from the end date", func(t *testing.T) {
		repo := newTestRepository()

		asset := validAsset("LPT-003")
		asset.WarrantyEndDate = time.Now().AddDate(0, 0, 10)
		asset.WarrantyStatus = domain.WarrantyStatusActive // caller input must be ignored
		require.NoError(t, repo.CreateAsset(asset))
		require.Equal(t, domain.WarrantyStatusExpiringSoon, asset.WarrantyStatus)
	})

	t.Run("rejects a future purchase date", func(t *testing.T) {
		repo := newTestRepository()

		asset := validAsset("LPT-004")
		asset.DateOfPurchase = time.Now().AddDate(0, 0, 1)
		require.ErrorIs(t, repo.CreateAsset(asset), ErrFuturePurchaseDate)
	})

	t.Run("rejects a duplicate asset code", func(t *testing.T) {
		repo := newTestRepository()

		require.NoError(t, repo.CreateAsset(validAsset("LPT-005")))
		require.ErrorIs(t, repo.CreateAsset(validAsset("LPT-005")), ErrDuplicateAssetCode)
	})

	t.Run("a removed asset releases its code", func(t *testing.T) {
		repo := newTestRepository()

		first := validAsset("LPT-006")
		require.NoError(t, repo.CreateAsset(first))
		_, err := repo.RemoveAsset(first.ID, "written off")
		require.NoError(t, err)

		require.NoError(t, repo.CreateAsset(validAsset("LPT-006")))
	})

	t.Run("requires a lease contract code for leased assets", func(t *testing.T) {
		repo := newTestRepository()

		asset := validAsset("LPT-007")
		asset.Ownership = domain.OwnershipLeased
		require.ErrorIs(t, repo.CreateAsset(asset), ErrLeaseCodeRequired)

		asset.LeaseContractCode = "LC-2025-001"
		require.NoError(t, repo.CreateAsset(asset))
	})
}

func TestUpdateAsset(t *testing.T) {
	t.Parallel()

	t.Run("recomputes warranty status and bumps updatedAt", func(t *testing.T) {
		repo := newTestRepository()

		asset := validAsset("LPT-010")
		require.NoError(t, repo.CreateAsset(asset))
		createdAt := asset.CreatedAt

		asset.WarrantyEndDate = time.Now().AddDate(0, 0, -10)
		require.NoError(t, repo.UpdateAsset(asset))

		require.Equal(t, domain.WarrantyStatusExpired, asset.WarrantyStatus)
		require.Equal(t, createdAt, asset.CreatedAt)
		require.True(t, asset.UpdatedAt.After(createdAt) || asset.UpdatedAt.Equal(createdAt))

		stored, err := repo.GetAssetByID(asset.ID)
		require.NoError(t, err)
		require.Equal(t, domain.WarrantyStatusExpired, stored.WarrantyStatus)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		repo := newTestRepository()

		asset := validAsset("LPT-011")
		asset.ID = "no-such-id"
		require.ErrorIs(t, repo.UpdateAsset(asset), ErrNotFound)
	})

	t.Run("rejects taking another asset's code", func(t *testing.T) {
		repo := newTestRepository()

		first := validAsset("LPT-012")
		require.NoError(t, repo.CreateAsset(first))
		second := validAsset("LPT-013")
		require.NoError(t, repo.CreateAsset(second))

		second.AssetCode = "LPT-012"
		require.ErrorIs(t, repo.UpdateAsset(second), ErrDuplicateAssetCode)
	})
}

func TestRemoveAsset(t *testing.T) {
	t.Parallel()

	t.Run("requires a reason", func(t *testing.T) {
		repo := newTestRepository()

		asset := validAsset("LPT-020")
		require.NoError(t, repo.CreateAsset(asset))

		_, err := repo.RemoveAsset(asset.ID, "")
		require.ErrorIs(t, err, ErrRemovalReasonRequired)
		_, err = repo.RemoveAsset(asset.ID, "   ")
		require.ErrorIs(t, err, ErrRemovalReasonRequired)
	})

	t.Run("stamps removal metadata", func(t *testing.T) {
		repo := newTestRepository()

		asset := validAsset("LPT-021")
		require.NoError(t, repo.CreateAsset(asset))

		removed, err := repo.RemoveAsset(asset.ID, "stolen")
		require.NoError(t, err)
		require.Equal(t, domain.AssetStatusRemoved, removed.Status)
		require.Equal(t, "stolen", removed.RemovalReason)
		require.NotNil(t, removed.RemovedDate)
	})

	t.Run("removing twice fails", func(t *testing.T) {
		repo := newTestRepository()

		asset := validAsset("LPT-022")
		require.NoError(t, repo.CreateAsset(asset))

		_, err := repo.RemoveAsset(asset.ID, "broken")
		require.NoError(t, err)
		_, err = repo.RemoveAsset(asset.ID, "broken again")
		require.ErrorIs(t, err, ErrAssetAlreadyRemoved)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		repo := newTestRepository()

		_, err := repo.RemoveAsset("no-such-id", "lost")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteAsset(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()

	asset := validAsset("LPT-030")
	require.NoError(t, repo.CreateAsset(asset))

	require.NoError(t, repo.DeleteAsset(asset.ID))
	_, err := repo.GetAssetByID(asset.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, repo.DeleteAsset(asset.ID), ErrNotFound)
}

func TestAssignAsset(t *testing.T) {
	t.Parallel()

	newEmployee := func(t *testing.T, repo *Repository) *domain.Employee {
		t.Helper()
		employee := &domain.Employee{
			EmpNo:        "BTSPL100",
			DisplayName:  "Rahul Sharma",
			Email:        "rahul.sharma@btspl.com",
			EmployeeType: domain.EmployeeTypePermanent,
			Department:   "Engineering",
			SubFunction:  "Development",
		}
		require.NoError(t, repo.CreateEmployee(employee))
		return employee
	}

	t.Run("captures the employee snapshot", func(t *testing.T) {
		repo := newTestRepository()
		employee := newEmployee(t, repo)

		asset := validAsset("LPT-040")
		require.NoError(t, repo.CreateAsset(asset))

		assignedDate := time.Now()
		assigned, err := repo.AssignAsset(asset.ID, employee.ID, AssignmentFields{
			PrimaryLocation: "Bangalore",
			UserDepartment:  "Engineering",
			SubFunction:     employee.SubFunction,
			AssignedDate:    &assignedDate,
		})
		require.NoError(t, err)

		require.Equal(t, employee.ID, assigned.EmployeeID)
		require.Equal(t, "Rahul Sharma", assigned.EmployeeName)
		require.Equal(t, "rahul.sharma@btspl.com", assigned.EmployeeEmail)
		require.Equal(t, "Permanent", assigned.EmployeeType)
		require.NotNil(t, assigned.AssignedDate)
	})

	t.Run("snapshot stays stale after the employee is edited", func(t *testing.T) {
		repo := newTestRepository()
		employee := newEmployee(t, repo)

		asset := validAsset("LPT-041")
		require.NoError(t, repo.CreateAsset(asset))
		_, err := repo.AssignAsset(asset.ID, employee.ID, AssignmentFields{PrimaryLocation: "Bangalore", UserDepartment: "Engineering"})
		require.NoError(t, err)

		employee.DisplayName = "Rahul S."
		require.NoError(t, repo.UpdateEmployee(employee))

		stored, err := repo.GetAssetByID(asset.ID)
		require.NoError(t, err)
		require.Equal(t, "Rahul Sharma", stored.EmployeeName)
	})

	t.Run("clearing the assignment clears the snapshot", func(t *testing.T) {
		repo := newTestRepository()
		employee := newEmployee(t, repo)

		asset := validAsset("LPT-042")
		require.NoError(t, repo.CreateAsset(asset))
		_, err := repo.AssignAsset(asset.ID, employee.ID, AssignmentFields{PrimaryLocation: "Bangalore", UserDepartment: "Engineering"})
		require.NoError(t, err)

		cleared, err := repo.AssignAsset(asset.ID, "", AssignmentFields{})
		require.NoError(t, err)
		require.Empty(t, cleared.EmployeeID)
		require.Empty(t, cleared.EmployeeName)
		require.Empty(t, cleared.EmployeeEmail)
		require.Empty(t, cleared.EmployeeType)
		require.Nil(t, cleared.AssignedDate)
	})

	t.Run("unknown employee fails", func(t *testing.T) {
		repo := newTestRepository()

		asset := validAsset("LPT-043")
		require.NoError(t, repo.CreateAsset(asset))

		_, err := repo.AssignAsset(asset.ID, "no-such-employee", AssignmentFields{})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetAllAssetsOrder(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()
	for _, code := range []string{"LPT-050", "LPT-051", "LPT-052"} {
		require.NoError(t, repo.CreateAsset(validAsset(code)))
	}

	assets := repo.GetAllAssets()
	require.Len(t, assets, 3)
	for i, asset := range assets {
		require.Equal(t, i+1, asset.SNo)
	}
}
