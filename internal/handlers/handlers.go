package handlers

import (
	"net/http"

	_ "github.com/0wnerDied/Web-Development-Course-Design/docs"
	authhandlers "github.com/0wnerDied/Web-Development-Course-Design/internal/handlers/auth"
	drawshandlers "github.com/0wnerDied/Web-Development-Course-Design/internal/handlers/draws"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/service"
	"github.com/0wnerDied/Web-Development-Course-Design/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type DrawHandler interface {
	ListDraws(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListWins(w http.ResponseWriter, r *http.Request)
	CreateDraw(w http.ResponseWriter, r *http.Request)
	ExecuteDraw(w http.ResponseWriter, r *http.Request)
	SetWinner(w http.ResponseWriter, r *http.Request)
	DeleteDraw(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler AuthHandler
	DrawHandler DrawHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler: authhandlers.New(s.AuthService),
		DrawHandler: drawshandlers.New(s.DrawService, s.Permissions),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/lucky-draw", func(r chi.Router) {
				r.Get("/", h.DrawHandler.ListDraws)
				r.Get("/pending", h.DrawHandler.ListPending)
				r.Get("/wins/{qq}", h.DrawHandler.ListWins)
				r.Post("/create", h.DrawHandler.CreateDraw)
				r.Post("/execute/{id}", h.DrawHandler.ExecuteDraw)
				r.Post("/winner/{id}", h.DrawHandler.SetWinner)
				r.Delete("/{id}", h.DrawHandler.DeleteDraw)
			})
		})
	})

	return r
}
