package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT más los datos básicos del usuario.
type LoginResponse struct {
	Token   string  `json:"token"`
	Usuario UserDTO `json:"usuario"`
}

// RegisterUserRequest alta de usuario (solo admin).
type RegisterUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}
