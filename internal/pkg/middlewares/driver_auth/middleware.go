package driver_auth

import (
	"net/http"
	"strings"

	"dispatch/internal/pkg/driverauth"
	"dispatch/pkg/logger"
)

func Middleware(log handlerLogger, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			driverID, err := verifier.VerifyToken(token)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("driver token rejected")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := driverauth.WithDriverID(r.Context(), driverID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
