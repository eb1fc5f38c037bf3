package dto

// RegisterClientRequest entrada do cadastro de cliente.
type RegisterClientRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterClientResponse saída do cadastro de cliente.
type RegisterClientResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// ClientLoginRequest entrada do login de cliente.
type ClientLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ClientLoginResponse saída do login de cliente.
type ClientLoginResponse struct {
	OK    bool   `json:"ok"`
	ID    string `json:"id"`
	Role  string `json:"role"`
	Token string `json:"token"`
}
