package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/brainstorm-app/brainstorm/internal/client/api"
	"github.com/brainstorm-app/brainstorm/internal/client/models"
	"github.com/brainstorm-app/brainstorm/internal/client/validation"
)

// Dashboard aggregates the sections of the home screen. Sections that
// failed to load are nil.
type Dashboard struct {
	Gaming      []models.Post
	Development []models.Post
	Research    []models.Post
	Stats       *models.Stats
}

// PostsService defines project-post operations for the CLI.
type PostsService interface {
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, draft models.PostDraft) (*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, id string, draft models.PostDraft) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	ByCategory(ctx context.Context, category models.Category) ([]models.Post, error)
	ByTag(ctx context.Context, tag string) ([]models.Post, error)
	ByUser(ctx context.Context, userID string) ([]models.Post, error)
	Search(ctx context.Context, query string) ([]models.Post, error)
	Stats(ctx context.Context) (*models.Stats, error)
	LoadDashboard(ctx context.Context) (*Dashboard, error)
}

type postsService struct {
	client api.Client
}

// NewPostsService constructs a PostsService bound to the given API client.
func NewPostsService(client api.Client) PostsService {
	return &postsService{client: client}
}

func (s *postsService) List(ctx context.Context) ([]models.Post, error) {
	return s.client.ListPosts(ctx)
}

func (s *postsService) Create(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	if fe := validation.ValidatePostDraft(draft); !fe.Valid() {
		return nil, &FormError{Fields: fe}
	}
	return s.client.CreatePost(ctx, draft)
}

func (s *postsService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.client.GetPost(ctx, id)
}

func (s *postsService) Update(ctx context.Context, id string, draft models.PostDraft) (*models.Post, error) {
	if fe := validation.ValidatePostDraft(draft); !fe.Valid() {
		return nil, &FormError{Fields: fe}
	}
	return s.client.UpdatePost(ctx, id, draft)
}

func (s *postsService) Delete(ctx context.Context, id string) error {
	return s.client.DeletePost(ctx, id)
}

func (s *postsService) ByCategory(ctx context.Context, category models.Category) ([]models.Post, error) {
	if !category.Valid() {
		return nil, &FormError{Fields: validation.FieldErrors{"category": "Please select a category"}}
	}
	return s.client.PostsByCategory(ctx, category)
}

func (s *postsService) ByTag(ctx context.Context, tag string) ([]models.Post, error) {
	return s.client.PostsByTag(ctx, tag)
}

func (s *postsService) ByUser(ctx context.Context, userID string) ([]models.Post, error) {
	return s.client.PostsByUser(ctx, userID)
}

func (s *postsService) Search(ctx context.Context, query string) ([]models.Post, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	return s.client.SearchPosts(ctx, query)
}

func (s *postsService) Stats(ctx context.Context) (*models.Stats, error) {
	return s.client.Stats(ctx)
}

// LoadDashboard fetches the three category sections and the stats
// concurrently and waits for all of them. Sections fail independently:
// the partial Dashboard is returned alongside the joined errors so the
// caller can render what did load.
func (s *postsService) LoadDashboard(ctx context.Context) (*Dashboard, error) {
	var (
		d    Dashboard
		mu   sync.Mutex
		wg   sync.WaitGroup
		errs []error
	)

	fetchCategory := func(c models.Category, dst *[]models.Post) {
		defer wg.Done()
		posts, err := s.client.PostsByCategory(ctx, c)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = posts
	}

	wg.Add(4)
	go fetchCategory(models.CategoryGaming, &d.Gaming)
	go fetchCategory(models.CategoryDevelopment, &d.Development)
	go fetchCategory(models.CategoryResearch, &d.Research)
	go func() {
		defer wg.Done()
		stats, err := s.client.Stats(ctx)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
			return
		}
		d.Stats = stats
	}()
	wg.Wait()

	return &d, errors.Join(errs...)
}
