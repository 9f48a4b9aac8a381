package constant

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)
