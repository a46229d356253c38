package model

// Role 由 JWT 的 role claim 帶入
type Role string

const (
	RoleUser     Role = "user"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Actor 發出請求的帳號
type Actor struct {
	UserID int  `json:"user_id"`
	Role   Role `json:"role"`
}

// IsStaff 員工或管理員
func (a Actor) IsStaff() bool {
	return a.Role == RoleEmployee || a.Role == RoleAdmin
}
