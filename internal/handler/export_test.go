package handler

import (
	"encoding/csv"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/btspl-dev/asset-tracker/backend/internal/config"
	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
	"github.com/btspl-dev/asset-tracker/backend/internal/repository"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Warranty.ExpiryHorizonDays = 30
	cfg.JWT.Secret = "test-secret"

	h, err := NewHandler(cfg, repository.NewRepository(cfg), nil, nil)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h
}

func TestExportAssetsRoundTrip(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	asset := &domain.Asset{
		AssetCode:       "BTSPL-LPT-001",
		AssetType:       domain.AssetTypeLaptop,
		Department:      "Engineering, Platform", // embedded comma must survive
		Status:          domain.AssetStatusActive,
		Brand:           "Dell",
		Model:           "Latitude 5520",
		SerialNo:        "DL5520-001",
		HostName:        "BTSPL-DEV-001",
		BriefConfig:     "i7, 16GB RAM",
		Ownership:       domain.OwnershipOwned,
		PurchaseVendor:  "Dell India",
		DateOfPurchase:  time.Now().AddDate(-1, 0, 0),
		WarrantyEndDate: time.Now().AddDate(1, 0, 0),
		WarrantyType:    domain.WarrantyTypeWarranty,
		PrimaryLocation: "Bangalore",
		UserDepartment:  "Engineering",
	}
	require.NoError(t, h.repository.CreateAsset(asset))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/assets/export", nil)
	h.ExportAssets(rec, req)

	require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, assetExportHeader, rows[0])
	require.Equal(t, []string{
		"BTSPL-LPT-001", "Laptop", "Dell", "Latitude 5520", "Active", "", "Engineering, Platform", "Active",
	}, rows[1])
}

func TestExportEmployeesRoundTrip(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	employee := &domain.Employee{
		EmpNo:        "BTSPL001",
		DisplayName:  "Rahul Sharma",
		Email:        "rahul.sharma@btspl.com",
		EmployeeType: domain.EmployeeTypePermanent,
		Department:   "Engineering",
		SubFunction:  "Development",
	}
	require.NoError(t, h.repository.CreateEmployee(employee))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/employees/export", nil)
	h.ExportEmployees(rec, req)

	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, employeeExportHeader, rows[0])
	require.Equal(t, []string{
		"BTSPL001", "Rahul Sharma", "rahul.sharma@btspl.com", "Permanent", "Engineering", "Development",
	}, rows[1])
}
