package entity

type StaffRole string

const (
	StaffRoleAdmin StaffRole = "admin"
	StaffRoleAgent StaffRole = "agent"
)

type Staff struct {
	Base
	Username     string    `db:"username"`
	PasswordHash string    `db:"password"`
	FullName     string    `db:"full_name"`
	Role         StaffRole `db:"role"`
	IsActive     bool      `db:"is_active"`
}
