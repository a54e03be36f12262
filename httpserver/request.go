package httpserver

type LoginRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}
