package domain

import "fmt"

// Player is an account. LoginPassword holds a bcrypt hash and never leaves
// the server; Password is only read from request bodies.
type Player struct {
	PlayerID         int64  `json:"player_id" db:"player_id"`
	EmailAccount     string `json:"email_account" db:"email_account" validate:"required,email"`
	LoginPassword    string `json:"-" db:"login_password"`
	Password         string `json:"password,omitempty" db:"-" validate:"omitempty,min=4"`
	Role             string `json:"role" db:"role" validate:"omitempty,oneof=Admin Player"`
	ExperiencePoints int64  `json:"experience_points" db:"experience_points" validate:"gte=0"`
}

func (p *Player) Key() int64      { return p.PlayerID }
func (p *Player) SetKey(id int64) { p.PlayerID = id }
func (p *Player) Label() string   { return p.EmailAccount }

// Character is the single in-game avatar owned by a player.
type Character struct {
	CharacterID   int64  `json:"character_id" db:"character_id"`
	PlayerID      int64  `json:"player_id" db:"player_id" validate:"required,gt=0"`
	CharacterName string `json:"character_name" db:"character_name" validate:"required,max=100"`
}

func (c *Character) Key() int64      { return c.CharacterID }
func (c *Character) SetKey(id int64) { c.CharacterID = id }
func (c *Character) Label() string {
	return fmt.Sprintf("%s (player %d)", c.CharacterName, c.PlayerID)
}

// RegisterRequest is the self-service sign-up payload.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// LoginRequest is shared by the player and admin console logins.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token    string `json:"token"`
	PlayerID int64  `json:"player_id"`
	Role     string `json:"role"`
}

// PasswordResetRequest starts the OTP reset flow.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm completes the OTP reset flow.
type PasswordResetConfirm struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

// ChangePasswordRequest is used by a signed-in player.
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=4"`
}
