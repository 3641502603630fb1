package api

import (
	"context"

	"github.com/brainstorm-app/brainstorm/internal/client/models"
)

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	Token string
	User  models.User
}

// Client is the typed surface of the BrainStorm REST API. Application
// services depend on this interface; tests substitute fakes.
type Client interface {
	Register(ctx context.Context, req models.RegistrationRequest) (*AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest) (*AuthResult, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateUser(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, draft models.PostDraft) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error
	PostsByCategory(ctx context.Context, category models.Category) ([]models.Post, error)
	PostsByTag(ctx context.Context, tag string) ([]models.Post, error)
	PostsByUser(ctx context.Context, userID string) ([]models.Post, error)
	SearchPosts(ctx context.Context, query string) ([]models.Post, error)

	Stats(ctx context.Context) (*models.Stats, error)
}
