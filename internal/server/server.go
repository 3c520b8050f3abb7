package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	httpServer *http.Server
	Router     *chi.Mux
}

func NewServer(port string) *Server {
	router := chi.NewRouter()

	serv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return &Server{
		httpServer: serv,
		Router:     router,
	}
}

func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// RegisterSwagger публикует UI по адресу, под которым сервис виден снаружи.
// Схема не указывается, браузер берёт её со страницы (http или https).
func (s *Server) RegisterSwagger(publicHost string) {
	s.Router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerDocURL(publicHost)),
	))
}

func swaggerDocURL(publicHost string) string {
	return "//" + publicHost + "/swagger/doc.json"
}

func (s *Server) RegisterMetrics() {
	s.Router.Method(http.MethodGet, "/metrics", promhttp.Handler())
}
