package domain

// Player roles carried in the JWT "role" claim.
const (
	RoleAdmin  = "Admin"
	RolePlayer = "Player"
)
