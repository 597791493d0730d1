package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/TemirB/bytebazaar/internal/application/service"
	"github.com/TemirB/bytebazaar/internal/observability"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const SessionCookie = "bb_session"

type ctxKey int

const (
	sessionKey ctxKey = iota
	adminKey
)

// ServerTimingApp measures the whole request and reports it to
// Metrics.ObserveHTTP under the matched route pattern. Handlers that want the
// timing visible to the client write their own Server-Timing entries.
func ServerTimingApp(m observability.Metrics) func(http.Handler) http.Handler {
	if m == nil {
		m = observability.Noop{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			dur := float64(time.Since(start).Microseconds()) / 1000.0

			route := r.URL.Path
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			m.ObserveHTTP(r.Method, route, ww.Status(), dur)
		})
	}
}

// withSession resolves the shopper's session from the cookie, issuing a new
// one when the cookie is missing or no longer known.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(SessionCookie); err == nil {
			id = c.Value
		}

		id, sess, created := s.deps.Sessions.GetOrCreate(id)
		if created {
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			s.logger.Debug("Session started", zap.String("session_id", id))
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
	})
}

func sessionFrom(ctx context.Context) *service.Session {
	sess, _ := ctx.Value(sessionKey).(*service.Session)
	return sess
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authorization header is missing"})
			return
		}
		subject, err := s.deps.Tokens.Validate(strings.TrimSpace(raw))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminKey, subject)))
	})
}
