package domain

// UserRole controls what a user may do; cashiers post records, admins also
// manage the catalog and delete records.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleCashier UserRole = "CASHIER"
)

// User is a cashier or admin. The id attributes every posting and cash entry.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"isActive"`
	AuditFields
}
