package service

import (
	"github.com/0wnerDied/Web-Development-Course-Design/internal/handlers/auth"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/handlers/draws"

	pkgauth "github.com/0wnerDied/Web-Development-Course-Design/pkg/auth"

	"github.com/0wnerDied/Web-Development-Course-Design/internal/pg"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/repo"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/service/authservice"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/service/drawservice"
)

type Services struct {
	AuthService auth.Service
	DrawService draws.Service
	Permissions draws.PermissionChecker
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	drawService := drawservice.New(repo.DrawRepo, repo.ItemRepo, repo.LPRepo, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService: authService,
		DrawService: drawService,
		Permissions: authService,
	}
}
