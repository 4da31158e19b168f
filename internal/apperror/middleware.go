package apperror

import (
	"errors"
	"net/http"
)

type handler func(w http.ResponseWriter, r *http.Request) error

func Middleware(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := h(w, r)
		if err == nil {
			return
		}

		var valErr *ValidationError
		if errors.As(err, &valErr) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write(valErr.Marshal())

			return
		}

		var remoteErr *RemoteError
		if errors.As(err, &remoteErr) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write(remoteErr.Marshal())

			return
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			if errors.Is(err, ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
			} else if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrUnauthenticated) {
				w.WriteHeader(http.StatusUnauthorized)
			} else if errors.Is(err, ErrForbidden) {
				w.WriteHeader(http.StatusForbidden)
			} else if errors.Is(err, ErrNotConfigured) {
				w.WriteHeader(http.StatusServiceUnavailable)
			} else {
				w.WriteHeader(http.StatusBadRequest)
			}

			w.Write(appErr.Marshal())

			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		w.Write(internalError().Marshal())
	}
}
