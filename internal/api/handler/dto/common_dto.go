package dto

import "time"

const ErrorTitle = "Bad Request. See the documentation!"

type ErrorResponse struct {
	Title     string            `json:"title" example:"Bad Request. See the documentation!"`
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status" example:"400"`
	Exception string            `json:"exception" example:"NotFound"`
	Details   map[string]string `json:"details"`
}

type TokenRequest struct {
	Username string `json:"username" validate:"required" example:"admin"`
}

func (r *TokenRequest) Validate() error {
	return finish(validateStruct(r))
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
