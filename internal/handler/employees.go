package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
	"github.com/btspl-dev/asset-tracker/backend/internal/repository"
)

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees := h.repository.GetAllEmployees()
	h.successResponse(w, r, "employees retrieved", employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)
	h.successResponse(w, r, "employee retrieved", employee)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmpNo        string `json:"empNo" validate:"required"`
		DisplayName  string `json:"displayName" validate:"required"`
		Email        string `json:"email" validate:"required,email"`
		EmployeeType string `json:"employeeType" validate:"required,oneof=Permanent Contractual"`
		Department   string `json:"department" validate:"required"`
		SubFunction  string `json:"subFunction"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.checkTaxonomy(domain.CategoryDepartment, req.Department); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := &domain.Employee{
		EmpNo:        req.EmpNo,
		DisplayName:  req.DisplayName,
		Email:        req.Email,
		EmployeeType: domain.EmployeeType(req.EmployeeType),
		Department:   req.Department,
		SubFunction:  req.SubFunction,
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmpNo):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employee created", employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	// required string fields stay required on a partial update: an explicit
	// "" must be rejected, not applied
	var req struct {
		EmpNo        *string `json:"empNo" validate:"omitempty,min=1"`
		DisplayName  *string `json:"displayName" validate:"omitempty,min=1"`
		Email        *string `json:"email" validate:"omitempty,email"`
		EmployeeType *string `json:"employeeType" validate:"omitempty,oneof=Permanent Contractual"`
		Department   *string `json:"department" validate:"omitempty,min=1"`
		SubFunction  *string `json:"subFunction"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	if req.EmpNo != nil {
		employee.EmpNo = *req.EmpNo
	}
	if req.DisplayName != nil {
		employee.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.EmployeeType != nil {
		employee.EmployeeType = domain.EmployeeType(*req.EmployeeType)
	}
	if req.Department != nil {
		if err := h.checkTaxonomy(domain.CategoryDepartment, *req.Department); err != nil {
			h.badRequest(w, r, err)
			return
		}
		employee.Department = *req.Department
	}
	if req.SubFunction != nil {
		employee.SubFunction = *req.SubFunction
	}

	if err := h.repository.UpdateEmployee(employee); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmpNo):
			h.errorResponse(w, r, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "employee not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employee updated", employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeCtx).(*domain.Employee)

	if err := h.repository.DeleteEmployee(employee.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmployeeHasAssets):
			count := h.repository.AssignedAssetCount(employee.ID)
			h.errorResponse(w, r, fmt.Sprintf("cannot delete employee: %d asset(s) are still assigned, unassign them first", count))
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "employee not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "employee deleted", nil)
}
