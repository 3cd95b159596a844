package dto

// SeedAccount describes one demo account to create or refresh. The plain
// password is hashed before it ever reaches storage.
type SeedAccount struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Role     string `json:"role" validate:"omitempty,oneof=STUDENT INSTRUCTOR ADMIN"`
}
