// FILE: internal/dto/user_dto.go
package dto

type PerfilResponse struct {
	Nombre          string `json:"nombre"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type UpdatePerfilRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

type FotoResponse struct {
	Message         string `json:"message"`
	ProfileImageURL string `json:"profileImageUrl"`
}
