package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"hopebridge/internal/metrics"

	"github.com/sirupsen/logrus"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, fmt.Sprintf("%d", rw.statusCode)).Inc()

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// RequireAuth checks the session cookie against the active session token.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(s.config.CookieName)
		if err != nil {
			s.logger.WithError(err).Debug("no session cookie found")

			s.setRedirectCookie(w, r.URL.Path, time.Minute*5)

			http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
			return
		}

		var token string
		if err := s.cookie.Decode(s.config.CookieName, cookie.Value, &token); err != nil {
			s.logger.WithError(err).Error("failed to decode session cookie")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if !s.sessions.ValidToken(token) {
			s.logger.Debug("stale session token")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if path != "/" && strings.HasSuffix(path, "/") {
			newPath := strings.TrimSuffix(path, "/")
			newURL := *r.URL
			newURL.Path = newPath

			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}
