// FILE: internal/dto/chat_dto.go
package dto

import "time"

type ConsultaRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type ConsultaResponse struct {
	Response string `json:"response"`
}

type HistorialMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
