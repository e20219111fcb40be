// FILE: internal/pkg/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Sentinels cover every failure class a route handler has to map to a status.
var (
	ErrDuplicateEmail = errors.New("El correo ya está en uso")
	ErrBadCredentials = errors.New("Credenciales Incorrectas")
	ErrMissingToken   = errors.New("token no proporcionado")
	ErrInvalidToken   = errors.New("token inválido")
	ErrExpiredToken   = errors.New("token expirado")
	ErrUserNotFound   = errors.New("Usuario no encontrado")
)

// ValidationError marks a missing/invalid request field (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError wraps a failure from the completion API or the image host.
// When the remote service returned a structured error its message is passed
// through to the client; transport failures get a generic message.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func Upstream(message string, err error) error {
	return &UpstreamError{Message: message, Err: err}
}

// StatusCode maps an error to the HTTP status the route contract requires.
func StatusCode(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicateEmail) {
		return fiber.StatusBadRequest
	}
	if errors.Is(err, ErrBadCredentials) ||
		errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) {
		return fiber.StatusUnauthorized
	}
	if errors.Is(err, ErrUserNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// ClientMessage returns the JSON body message for an error. Unexpected
// failures collapse to a generic message so internals never leak.
func ClientMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Message
	}
	if errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrBadCredentials) ||
		errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrUserNotFound) {
		return err.Error()
	}
	return "Error en el servidor"
}
