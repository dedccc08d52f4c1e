package entity

import "time"

// Roles de staff.
const (
	RoleAdmin            = "Admin"
	RoleInventoryManager = "Inventory Manager"
	RoleFinanceManager   = "Finance Manager"
	RoleDeliveryStaff    = "Delivery Staff"
)

// Estados de cuenta de usuario.
const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

// User es un usuario de staff. PasswordHash es bcrypt; nunca se persiste ni
// compara texto plano.
type User struct {
	ID           string // surrogate (UUID)
	UserID       int64  // secuencial humano
	Name         string
	Email        string // único
	PasswordHash string
	Role         string
	Status       string // Active | Inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidRole valida un rol de staff.
func IsValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleInventoryManager, RoleFinanceManager, RoleDeliveryStaff:
		return true
	}
	return false
}
