package submit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a non-2xx answer from the intake server. The body is kept
// for logs and never shown to visitors.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("intake returned status %d", e.Code)
	}
	return fmt.Sprintf("intake returned status %d: %s", e.Code, e.Body)
}

// Unwrap makes client errors match ErrRejected.
func (e *StatusError) Unwrap() error {
	if e.Code >= 400 && e.Code < 500 {
		return ErrRejected
	}
	return nil
}

// Explain turns a submission error into the short Spanish line shown in the
// form. Details stay in the log.
func Explain(err error) string {
	var status *StatusError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &status):
		switch {
		case status.Code == http.StatusTooManyRequests:
			return "Demasiados intentos, prueba en un minuto."
		case status.Code == http.StatusRequestEntityTooLarge:
			return "Los datos son demasiado largos."
		case status.Code >= 400 && status.Code < 500:
			return "Revisa los datos del formulario."
		default:
			return "El servicio no está disponible, inténtalo más tarde."
		}
	case errors.Is(err, context.DeadlineExceeded):
		return "El servidor tardó demasiado en responder."
	case errors.Is(err, ErrRejected):
		return "Revisa los datos del formulario."
	default:
		return "Inténtalo de nuevo en unos segundos."
	}
}
