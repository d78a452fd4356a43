package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/gophdemo/internal/common"
	"github.com/dmitrijs2005/gophdemo/internal/server/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// identityFromContext returns the caller placed in the request context by
// accessTokenMiddleware.
func identityFromContext(ctx context.Context) (*auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*auth.Identity)
	return id, ok
}

func (s *HTTPServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	})
}

func (s *HTTPServer) accessTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		id, err := auth.Authenticate(strings.TrimPrefix(header, common.BearerPrefix), s.jwtSecret)
		if err != nil {
			s.logger.Warn(r.Context(), "invalid token", "error", err)
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
