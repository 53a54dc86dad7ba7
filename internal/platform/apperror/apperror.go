// Package apperror define el error estructurado de la API y su mapeo
// central a códigos HTTP. La causa original se loguea, nunca se envía al
// cliente.
package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"dog-breeds/internal/platform/logger"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindNotFound
	KindUpstreamUnavailable
	KindUpstreamStatus
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindUpstreamStatus:
		return "upstream_status"
	case KindPersistence:
		return "persistence_failure"
	default:
		return "internal"
	}
}

type Error struct {
	Kind Kind
	Op   string // operación que falló, p.ej. "favorites.Create"

	// Status sólo aplica a KindUpstreamStatus.
	Status int
	// Field sólo aplica a KindInvalidInput.
	Field string

	Err error
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.String()
	if e.Kind == KindUpstreamStatus {
		msg = fmt.Sprintf("%s status=%d", msg, e.Status)
	}
	if e.Field != "" {
		msg += " field=" + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func E(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func NotFound(op string, err error) *Error {
	return E(op, KindNotFound, err)
}

func InvalidInput(op, field string, err error) *Error {
	return &Error{Op: op, Kind: KindInvalidInput, Field: field, Err: err}
}

func UpstreamStatus(op string, status int) *Error {
	return &Error{Op: op, Kind: KindUpstreamStatus, Status: status}
}

// KindOf devuelve KindInternal para errores que no son *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func HTTPStatus(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}

	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstreamStatus:
		if e.Status >= 400 && e.Status <= 599 {
			return e.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage es lo único que ve el cliente. Vacío => respuesta sin body.
func publicMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "internal error"
	}

	switch e.Kind {
	case KindNotFound, KindUpstreamStatus:
		return ""
	case KindInvalidInput:
		if e.Field != "" {
			return e.Field + " invalid"
		}
		return "invalid input"
	case KindUpstreamUnavailable:
		return "upstream unavailable"
	case KindPersistence:
		return "persistence failure"
	default:
		return "internal error"
	}
}

// ErrorBody es el cuerpo JSON de los errores con mensaje.
type ErrorBody struct {
	Error string `json:"error"`
}

// Write traduce err a status + body y lo loguea con el logger del request.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)

	log := logger.FromContext(r.Context())
	fields := map[string]any{
		"status": status,
		"kind":   KindOf(err).String(),
		"err":    err,
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields)
	} else {
		log.Debug("request rejected", fields)
	}

	msg := publicMessage(err)
	if msg == "" {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorBody{Error: msg})
}
