package handler

type ContextKey string

var (
	RoleCtxKey        ContextKey = "role"
	SubCtxKey         ContextKey = "sub"
	PrincipalCtx      ContextKey = "principal"
	AssetCtx          ContextKey = "asset"
	EmployeeCtx       ContextKey = "employee"
	DropdownOptionCtx ContextKey = "dropdownOption"
)
