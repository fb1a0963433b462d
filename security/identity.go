package security

import "tapacademy.com/attendance/attendance/model"

// Identity is the authenticated caller, resolved once per request and passed
// explicitly to every handler that needs it.
type Identity struct {
	UserID string     `json:"nameid"`
	Role   model.Role `json:"role"`
}

func (i Identity) IsManager() bool {
	return i.Role == model.RoleManager
}
