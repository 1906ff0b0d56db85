package seed

import (
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/btspl-dev/asset-tracker/backend/internal/config"
	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
	"github.com/btspl-dev/asset-tracker/backend/internal/repository"
)

var demoUsers = []domain.User{
	{Username: "admin2", DisplayName: "Jane Admin", Email: "admin2@btspl.com", Role: domain.RoleAdmin},
	{Username: "hr1", DisplayName: "Sarah HR", Email: "hr@btspl.com", Role: domain.RoleHR},
	{Username: "director1", DisplayName: "Mike Director", Email: "director@btspl.com", Role: domain.RoleDirector},
}

var demoEmployees = []domain.Employee{
	{EmpNo: "BTSPL001", DisplayName: "Rahul Sharma", Email: "rahul.sharma@btspl.com", EmployeeType: domain.EmployeeTypePermanent, Department: "Engineering", SubFunction: "Development"},
	{EmpNo: "BTSPL002", DisplayName: "Priya Patel", Email: "priya.patel@btspl.com", EmployeeType: domain.EmployeeTypePermanent, Department: "HR", SubFunction: "Recruitment"},
	{EmpNo: "BTSPL003", DisplayName: "Amit Kumar", Email: "amit.kumar@btspl.com", EmployeeType: domain.EmployeeTypeContractual, Department: "IT", SubFunction: "Support"},
	{EmpNo: "BTSPL004", DisplayName: "Sneha Reddy", Email: "sneha.reddy@btspl.com", EmployeeType: domain.EmployeeTypePermanent, Department: "Finance", SubFunction: "Accounts"},
	{EmpNo: "BTSPL005", DisplayName: "Vikram Singh", Email: "vikram.singh@btspl.com", EmployeeType: domain.EmployeeTypePermanent, Department: "Engineering", SubFunction: "QA"},
	{EmpNo: "BTSPL006", DisplayName: "Anita Desai", Email: "anita.desai@btspl.com", EmployeeType: domain.EmployeeTypeContractual, Department: "Marketing", SubFunction: "Digital"},
}

var demoOptions = map[domain.DropdownCategory][]string{
	domain.CategoryAssetCode:      {"BTSPL-LPT", "BTSPL-DSK", "BTSPL-MON", "BTSPL-PRN", "BTSPL-KBM", "BTSPL-HDP"},
	domain.CategoryAssetType:      {"Laptop", "Desktop", "Monitor", "Printer", "Keyboard", "Mouse", "Headphone", "Keyboard + Mouse Combo"},
	domain.CategoryAction:         {"Repair", "Replace", "Upgrade Required", "Return to Vendor"},
	domain.CategoryBrand:          {"Dell", "HP", "Lenovo", "Samsung", "Canon", "Logitech", "Jabra", "Apple", "Asus", "Acer"},
	domain.CategoryModel:          {"Latitude 5520", "EliteBook 840", "ThinkCentre M920", "Inspiron 15", "MacBook Pro 14", "ThinkPad X1 Carbon"},
	domain.CategoryPurchaseVendor: {"Dell India", "HP India", "Lenovo India", "Amazon Business", "Croma Enterprise"},
	domain.CategoryLocation:       {"Bangalore", "Mumbai", "Delhi", "Hyderabad"},
}

type demoAsset struct {
	asset      domain.Asset
	employee   string // EmpNo of the holder, empty when unassigned
	assignedAt string
	removed    string // removal reason, empty when the asset stays in service
}

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func daysFromNow(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

var demoAssets = []demoAsset{
	{
		asset: domain.Asset{
			AssetCode: "BTSPL-LPT-001", AssetType: domain.AssetTypeLaptop, Department: "Engineering",
			Status: domain.AssetStatusActive, Brand: "Dell", Model: "Latitude 5520",
			SerialNo: "DL5520-001", HostName: "BTSPL-DEV-001", BriefConfig: "i7, 16GB RAM, 512GB SSD",
			Ownership: domain.OwnershipOwned, PurchaseVendor: "Dell India", DateOfPurchase: date("2023-06-15"),
			PurchasePrice: 95000, CurrentValue: 76000, DepreciationRate: 20,
			WarrantyEndDate: daysFromNow(400), WarrantyType: domain.WarrantyTypeWarranty,
			PrimaryLocation: "Bangalore", UserDepartment: "Engineering",
		},
		employee: "BTSPL001", assignedAt: "2023-06-20",
	},
	{
		asset: domain.Asset{
			AssetCode: "BTSPL-LPT-002", AssetType: domain.AssetTypeLaptop, Department: "HR",
			Status: domain.AssetStatusActive, Brand: "HP", Model: "EliteBook 840",
			SerialNo: "HP840-002", HostName: "BTSPL-HR-001", BriefConfig: "i5, 8GB RAM, 256GB SSD",
			Ownership: domain.OwnershipOwned, PurchaseVendor: "HP India", DateOfPurchase: date("2022-03-10"),
			PurchasePrice: 75000, CurrentValue: 45000, DepreciationRate: 20,
			WarrantyEndDate: daysFromNow(14), WarrantyType: domain.WarrantyTypeWarranty,
			PrimaryLocation: "Mumbai", UserDepartment: "HR",
		},
		employee: "BTSPL002", assignedAt: "2022-03-15",
	},
	{
		asset: domain.Asset{
			AssetCode: "BTSPL-DSK-001", AssetType: domain.AssetTypeDesktop, Department: "IT",
			Status: domain.AssetStatusActive, Action: "Upgrade Required", Brand: "Lenovo", Model: "ThinkCentre M920",
			SerialNo: "LEN920-003", HostName: "BTSPL-IT-001", BriefConfig: "i5, 8GB RAM, 1TB HDD",
			Ownership: domain.OwnershipOwned, PurchaseVendor: "Lenovo India", DateOfPurchase: date("2021-01-20"),
			PurchasePrice: 55000, CurrentValue: 22000, DepreciationRate: 20,
			WarrantyEndDate: daysFromNow(-200), WarrantyType: domain.WarrantyTypeAMC,
			PrimaryLocation: "Bangalore", UserDepartment: "IT",
		},
		employee: "BTSPL003", assignedAt: "2021-02-01",
	},
	{
		asset: domain.Asset{
			AssetCode: "BTSPL-MON-001", AssetType: domain.AssetTypeMonitor, Department: "Finance",
			Status: domain.AssetStatusReserved, Brand: "Samsung", Model: "S24 FHD",
			SerialNo: "SAM24-004", HostName: "BTSPL-FIN-001", BriefConfig: `24" FHD IPS`,
			Ownership: domain.OwnershipLeased, LeaseContractCode: "LC-2024-017",
			PurchaseVendor: "Croma Enterprise", DateOfPurchase: date("2024-02-05"),
			PurchasePrice: 18000, CurrentValue: 15000, DepreciationRate: 15,
			WarrantyEndDate: daysFromNow(150), WarrantyType: domain.WarrantyTypeWarranty,
			PrimaryLocation: "Mumbai", UserDepartment: "Finance",
		},
	},
	{
		asset: domain.Asset{
			AssetCode: "BTSPL-LPT-003", AssetType: domain.AssetTypeLaptop, Department: "Marketing",
			Status: domain.AssetStatusActive, Brand: "Apple", Model: "MacBook Pro 14",
			SerialNo: "MBP14-005", HostName: "BTSPL-MKT-001", BriefConfig: "M2 Pro, 16GB RAM, 512GB SSD",
			Ownership: domain.OwnershipOwned, PurchaseVendor: "Amazon Business", DateOfPurchase: date("2020-08-12"),
			PurchasePrice: 65000, CurrentValue: 13000, DepreciationRate: 25,
			WarrantyEndDate: daysFromNow(-600), WarrantyType: domain.WarrantyTypeNonWarranty,
			PrimaryLocation: "Delhi", UserDepartment: "Marketing",
		},
		removed: "Screen damaged beyond repair",
	},
}

// Run loads the demo dataset into the repository. The store is in-memory,
// so this runs inside the API process at startup, not as a separate binary.
func Run(cfg *config.Config, repo *repository.Repository) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.User.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, user := range demoUsers {
		user.PasswordHash = string(passwordHash)
		if err := repo.CreateUser(&user); err != nil {
			return err
		}
	}

	employeeIDs := make(map[string]string)
	for _, employee := range demoEmployees {
		if err := repo.CreateEmployee(&employee); err != nil {
			return err
		}
		employeeIDs[employee.EmpNo] = employee.ID
	}

	for _, category := range domain.DropdownCategories {
		for _, value := range demoOptions[category] {
			option := domain.DropdownOption{Category: category, Value: value}
			if err := repo.CreateDropdownOption(&option); err != nil {
				return err
			}
		}
	}

	for _, entry := range demoAssets {
		asset := entry.asset
		if err := repo.CreateAsset(&asset); err != nil {
			return err
		}

		if entry.employee != "" {
			assignedDate := date(entry.assignedAt)
			employee, err := repo.GetEmployeeByID(employeeIDs[entry.employee])
			if err != nil {
				return err
			}
			if _, err := repo.AssignAsset(asset.ID, employee.ID, repository.AssignmentFields{
				PrimaryLocation: asset.PrimaryLocation,
				UserDepartment:  asset.UserDepartment,
				SubFunction:     employee.SubFunction,
				AssignedDate:    &assignedDate,
			}); err != nil {
				return err
			}
		}

		if entry.removed != "" {
			if _, err := repo.RemoveAsset(asset.ID, entry.removed); err != nil {
				return err
			}
		}
	}

	slog.Info("demo data seeded",
		"users", len(demoUsers),
		"employees", len(demoEmployees),
		"assets", len(demoAssets),
	)

	return nil
}
