package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"dog-breeds/internal/platform/apperror"
	"dog-breeds/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recover convierte un panic del handler en 500 y lo loguea una sola vez con
// el stack. Si el handler ya escribió headers no se toca la respuesta.
// http.ErrAbortHandler se relanza para que net/http corte la conexión.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			written := ww.Status() != 0
			logger.FromContext(r.Context()).Error("panic recovered", map[string]any{
				"panic":           fmt.Sprint(rec),
				"stack":           string(debug.Stack()),
				"headers_written": written,
			})
			if written {
				return
			}

			ww.Header().Set("Content-Type", "application/json")
			ww.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(ww).Encode(apperror.ErrorBody{Error: "internal error"})
		}()

		next.ServeHTTP(ww, r)
	})
}
