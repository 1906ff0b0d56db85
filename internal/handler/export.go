package handler

import (
	"encoding/csv"
	"net/http"
)

// Asset and employee exports mirror the dashboard table columns. encoding/csv
// quotes embedded commas, so a round trip through a CSV reader preserves
// every field value.

var assetExportHeader = []string{"Asset Code", "Type", "Brand", "Model", "Status", "Assigned To", "Department", "Warranty Status"}

func (h *Handler) ExportAssets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="assets-export.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(assetExportHeader); err != nil {
		h.logInternalServerError(r, err)
		return
	}
	for _, asset := range h.repository.GetAllAssets() {
		row := []string{
			asset.AssetCode,
			string(asset.AssetType),
			asset.Brand,
			asset.Model,
			string(asset.Status),
			asset.EmployeeName,
			asset.Department,
			string(asset.WarrantyStatus),
		}
		if err := cw.Write(row); err != nil {
			h.logInternalServerError(r, err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logInternalServerError(r, err)
	}
}

var employeeExportHeader = []string{"Emp No", "Name", "Email", "Type", "Department", "Sub-Function"}

func (h *Handler) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="employees-export.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(employeeExportHeader); err != nil {
		h.logInternalServerError(r, err)
		return
	}
	for _, employee := range h.repository.GetAllEmployees() {
		row := []string{
			employee.EmpNo,
			employee.DisplayName,
			employee.Email,
			string(employee.EmployeeType),
			employee.Department,
			employee.SubFunction,
		}
		if err := cw.Write(row); err != nil {
			h.logInternalServerError(r, err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logInternalServerError(r, err)
	}
}
