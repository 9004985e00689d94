package repo

import (
	"github.com/0wnerDied/Web-Development-Course-Design/internal/pg"
	drawrepo "github.com/0wnerDied/Web-Development-Course-Design/internal/repo/draw-repo"
	itemrepo "github.com/0wnerDied/Web-Development-Course-Design/internal/repo/item-repo"
	lprepo "github.com/0wnerDied/Web-Development-Course-Design/internal/repo/lp-repo"
	userrepo "github.com/0wnerDied/Web-Development-Course-Design/internal/repo/user-repo"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/service/authservice"
	"github.com/0wnerDied/Web-Development-Course-Design/internal/service/drawservice"
)

type Repositories struct {
	UserRepo authservice.Repo
	DrawRepo drawservice.DrawRepo
	ItemRepo drawservice.ItemRepo
	LPRepo   drawservice.LPRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	drawRepo := drawrepo.New(conn, txManager)
	itemRepo := itemrepo.New(conn)
	lpRepo := lprepo.New(conn)

	return &Repositories{
		UserRepo: userRepo,
		DrawRepo: drawRepo,
		ItemRepo: itemRepo,
		LPRepo:   lpRepo,
	}
}
