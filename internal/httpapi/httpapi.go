package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/TemirB/bytebazaar/internal/admin"
	"github.com/TemirB/bytebazaar/internal/application/service"
	"github.com/TemirB/bytebazaar/internal/domain"
	"github.com/TemirB/bytebazaar/internal/observability"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type Catalog interface {
	All() []domain.Product
	ByID(id string) (domain.Product, error)
	Categories() []domain.Category
	Category(id string) (domain.Category, error)
	ByCategory(id string) ([]domain.Product, error)
}

type Sessions interface {
	GetOrCreate(id string) (string, *service.Session, bool)
}

type AdminOrders interface {
	Orders() []admin.OrderView
	Order(id string) (admin.OrderView, error)
}

type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
	Validate(raw string) (string, error)
}

type MetricsSnapshot interface {
	Snapshot() ([]observability.Event, observability.Totals)
}

// Deps are the services behind the API. The admin routes are only mounted when
// Orders, Verifier and Tokens are all set; Stats is optional.
type Deps struct {
	Catalog  Catalog
	Sessions Sessions
	Orders   AdminOrders
	Verifier admin.Verifier
	Tokens   TokenIssuer
	Stats    MetricsSnapshot
}

type Server struct {
	deps    Deps
	router  chi.Router
	logger  *zap.Logger
	metrics observability.Metrics
}

func New(deps Deps, logger *zap.Logger, metrics observability.Metrics) *Server {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	s := &Server{
		deps:    deps,
		router:  chi.NewRouter(),
		logger:  logger,
		metrics: metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		ServerTimingApp(s.metrics),
	)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/products", s.listProducts)
	r.Get("/products/{id}", s.getProduct)
	r.Get("/categories", s.listCategories)
	r.Get("/categories/{id}/products", s.categoryProducts)

	r.Group(func(r chi.Router) {
		r.Use(s.withSession)

		r.Get("/cart", s.getCart)
		r.Post("/cart/items", s.addItem)
		r.Put("/cart/items/{id}", s.setQuantity)
		r.Delete("/cart/items/{id}", s.removeItem)
		r.Delete("/cart", s.clearCart)

		r.Post("/checkout", s.checkout)
		r.Get("/orders/last", s.lastOrder)
	})

	if s.deps.Orders != nil && s.deps.Verifier != nil && s.deps.Tokens != nil {
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", s.adminLogin)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Get("/orders", s.adminOrders)
				r.Get("/orders/{id}", s.adminOrder)
				if s.deps.Stats != nil {
					r.Get("/metrics", s.adminMetrics)
				}
			})
		})
	}
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
