package dto

type RegisterRequestDTO struct {
	Gmail    string `json:"gmail" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequestDTO struct {
	Gmail    string `json:"gmail" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}
