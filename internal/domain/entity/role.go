package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin    = 1
	RoleIDManager  = 2
	RoleIDVendor   = 3
	RoleIDCustomer = 4
)

// RoleNames constants
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleVendor   = "vendor"
	RoleCustomer = "customer"
)

// RoleIDByName maps a configured role name to its ID, returning false for
// unknown names.
func RoleIDByName(name string) (int, bool) {
	switch name {
	case RoleAdmin:
		return RoleIDAdmin, true
	case RoleManager:
		return RoleIDManager, true
	case RoleVendor:
		return RoleIDVendor, true
	case RoleCustomer:
		return RoleIDCustomer, true
	}
	return 0, false
}
