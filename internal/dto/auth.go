package dto

type LoginRequestDTO struct {
	QQ       string `json:"qq" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
