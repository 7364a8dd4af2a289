package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error
	List(ctx context.Context) ([]User, error)
	CountActiveAdmins(ctx context.Context) (int64, error)
}
