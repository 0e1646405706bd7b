package models

// Role is the access level carried by an administrator and asserted in
// issued tokens.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// Administrator represents a privileged account able to log in.
type Administrator struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"type:varchar(255)"`
	Password string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Role     Role   `json:"role" gorm:"type:varchar(10)"`
}
