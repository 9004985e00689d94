package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/0wnerDied/Web-Development-Course-Design/internal/domain"
	"github.com/0wnerDied/Web-Development-Course-Design/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByQQ(ctx context.Context, qq string) (*domain.User, error)
	ListPermissions(ctx context.Context, qq string) ([]string, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Authenticate(ctx context.Context, qq, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByQQ(ctx, qq)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("qq", qq))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("qq", qq))
	return user, nil
}

func (s *Service) GenerateToken(qq string) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(qq, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// HasPermission answers the capability check handlers perform before any draw
// operation. Unknown users simply have no permissions.
func (s *Service) HasPermission(ctx context.Context, qq string, names ...string) (bool, error) {
	perms, err := s.userRepo.ListPermissions(ctx, qq)
	if err != nil {
		zap.L().Error("can't resolve permissions", zap.String("qq", qq), zap.Error(err))
		return false, err
	}
	granted := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		granted[p] = struct{}{}
	}
	for _, name := range names {
		if _, ok := granted[name]; ok {
			return true, nil
		}
	}
	return false, nil
}
