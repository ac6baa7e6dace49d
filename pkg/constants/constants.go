package constants

// User roles.
const (
	RoleEmployee   = "employee"
	RoleTechnician = "technician"
	RoleManager    = "manager"
)

// Request statuses.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusRepaired   = "repaired"
	StatusScrap      = "scrap"
)

// Request types.
const (
	TypeCorrective = "corrective"
	TypePreventive = "preventive"
)

var ValidRoles = map[string]bool{
	RoleEmployee:   true,
	RoleTechnician: true,
	RoleManager:    true,
}

var ValidStatuses = map[string]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusRepaired:   true,
	StatusScrap:      true,
}

var ValidTypes = map[string]bool{
	TypeCorrective: true,
	TypePreventive: true,
}
