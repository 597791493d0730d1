package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Shopper drives a running storefront: every tick a new visitor fills a cart
// and checks out while claiming a one-cent price for everything.
type Shopper struct {
	baseURL string
	logger  *zap.Logger

	isRunning atomic.Bool
	wg        sync.WaitGroup
	mu        sync.Mutex
	cancel    context.CancelFunc

	placed   atomic.Int64
	rejected atomic.Int64
	failed   atomic.Int64
}

type RunRequest struct {
	Rate     int    `json:"rate"`
	Duration string `json:"duration"`
}

type Stats struct {
	IsRunning bool  `json:"is_running"`
	Placed    int64 `json:"placed"`
	Rejected  int64 `json:"rejected"`
	Failed    int64 `json:"failed"`
}

type product struct {
	ID    string `json:"id"`
	Stock int    `json:"stock"`
}

func NewShopper(baseURL string, logger *zap.Logger) *Shopper {
	return &Shopper{baseURL: baseURL, logger: logger}
}

func (s *Shopper) Start(rate int, duration time.Duration) {
	if !s.isRunning.CompareAndSwap(false, true) {
		return
	}
	s.placed.Store(0)
	s.rejected.Store(0)
	s.failed.Store(0)

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.logger.Info("Starting shoppers", zap.Int("rate", rate), zap.Duration("duration", duration))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.isRunning.Store(false)
		defer cancel()

		ticker := time.NewTicker(time.Second / time.Duration(rate))
		defer ticker.Stop()

		var visits sync.WaitGroup
		defer visits.Wait()
		for {
			select {
			case <-ticker.C:
				visits.Add(1)
				go func() {
					defer visits.Done()
					s.visit(ctx)
				}()
			case <-ctx.Done():
				s.logger.Info("Shoppers finished",
					zap.Int64("placed", s.placed.Load()),
					zap.Int64("rejected", s.rejected.Load()),
					zap.Int64("failed", s.failed.Load()),
				)
				return
			}
		}
	}()
}

func (s *Shopper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *Shopper) Stats() Stats {
	return Stats{
		IsRunning: s.isRunning.Load(),
		Placed:    s.placed.Load(),
		Rejected:  s.rejected.Load(),
		Failed:    s.failed.Load(),
	}
}

// visit is one shopper session; the cookie jar keeps its cart.
func (s *Shopper) visit(ctx context.Context) {
	jar, _ := cookiejar.New(nil)
	c := &http.Client{Jar: jar, Timeout: 30 * time.Second}

	var products []product
	if err := s.call(ctx, c, http.MethodGet, "/products", nil, &products); err != nil || len(products) == 0 {
		s.failed.Add(1)
		return
	}

	var items []map[string]any
	for _, p := range products {
		if p.Stock == 0 || rand.Intn(2) == 0 {
			continue
		}
		if err := s.call(ctx, c, http.MethodPost, "/cart/items", map[string]any{"product_id": p.ID}, nil); err != nil {
			continue
		}
		items = append(items, map[string]any{"product_id": p.ID, "quantity": 1, "price": "0.01"})
	}

	body := map[string]any{
		"name":  "Load Shopper",
		"email": fmt.Sprintf("shopper%d@example.com", rand.Intn(10000)),
		"phone": fmt.Sprintf("+1555%07d", rand.Intn(10000000)),
		"items": items,
	}
	err := s.call(ctx, c, http.MethodPost, "/checkout", body, nil)
	switch {
	case err == nil:
		s.placed.Add(1)
	case isStatus(err, http.StatusUnprocessableEntity):
		s.rejected.Add(1)
	default:
		s.failed.Add(1)
		s.logger.Debug("Checkout failed", zap.Error(err))
	}
}

type statusError struct{ code int }

func (e statusError) Error() string { return fmt.Sprintf("unexpected status %d", e.code) }

func isStatus(err error, code int) bool {
	se, ok := err.(statusError)
	return ok && se.code == code
}

func (s *Shopper) call(ctx context.Context, c *http.Client, method, path string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return statusError{code: resp.StatusCode}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	target := "http://localhost:8081"
	if v := os.Getenv("STOREFRONT_URL"); v != "" {
		target = v
	}

	shopper := NewShopper(target, logger)
	defer shopper.Stop()

	http.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req RunRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Rate <= 0 {
			req.Rate = 5
		}
		duration, err := time.ParseDuration(req.Duration)
		if err != nil {
			http.Error(w, "Invalid duration format: "+err.Error(), http.StatusBadRequest)
			return
		}

		shopper.Start(req.Rate, duration)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":   "started",
			"rate":     req.Rate,
			"duration": duration.String(),
		})
	})

	http.HandleFunc("/stop", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		shopper.Stop()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(shopper.Stats())
	})

	http.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(shopper.Stats())
	})

	port := ":8082"
	if v := os.Getenv("SHOPPER_PORT"); v != "" {
		port = ":" + v
	}

	logger.Info("Shopper control server started",
		zap.String("addr", port),
		zap.String("target", target),
		zap.Strings("endpoints", []string{"POST /start", "POST /stop", "GET /stats"}),
	)
	if err := http.ListenAndServe(port, nil); err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
}
