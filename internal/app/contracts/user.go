package contracts

import (
	"context"

	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/dto/requests"
	"caremind-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByRoles(ctx context.Context, roles []string) ([]models.User, error)
	UpdateUser(ctx context.Context, userID string, updateData map[string]interface{}) error
}

type UserUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*responses.User, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.User, error)
}
