package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/brainstorm-app/brainstorm/internal/client/models"
)

// RESTClient implements Client over a Gateway.
type RESTClient struct {
	gw *Gateway
}

func NewRESTClient(gw *Gateway) *RESTClient {
	return &RESTClient{gw: gw}
}

// call issues the request and, when out is non-nil, decodes the JSON
// response body into it.
func (c *RESTClient) call(ctx context.Context, rd RequestDescriptor, out any) error {
	data, err := c.gw.Do(ctx, rd)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", rd.Path, err)
	}
	return nil
}

// authResponse is the login/registration response shape: user fields plus
// the issued token at the top level. Some deployments return the user id
// as "id" instead of "_id", so both are accepted.
type authResponse struct {
	models.User
	Token string `json:"token"`
	AltID string `json:"id"`
}

func (r authResponse) result() *AuthResult {
	user := r.User
	if user.ID == "" {
		user.ID = r.AltID
	}
	return &AuthResult{Token: r.Token, User: user}
}

func (c *RESTClient) Register(ctx context.Context, req models.RegistrationRequest) (*AuthResult, error) {
	var resp authResponse
	rd := RequestDescriptor{Method: http.MethodPost, Path: "/api/users/register", Body: req}
	if err := c.call(ctx, rd, &resp); err != nil {
		return nil, err
	}
	return resp.result(), nil
}

func (c *RESTClient) Login(ctx context.Context, req models.LoginRequest) (*AuthResult, error) {
	var resp authResponse
	rd := RequestDescriptor{Method: http.MethodPost, Path: "/api/users/login", Body: req}
	if err := c.call(ctx, rd, &resp); err != nil {
		return nil, err
	}
	return resp.result(), nil
}

func (c *RESTClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	rd := RequestDescriptor{Method: http.MethodGet, Path: "/api/users/me"}
	if err := c.call(ctx, rd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *RESTClient) UpdateUser(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var user models.User
	rd := RequestDescriptor{Method: http.MethodPut, Path: "/api/users/me", Body: upd}
	if err := c.call(ctx, rd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *RESTClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	return c.listPosts(ctx, "/api/posts", nil)
}

func (c *RESTClient) CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	var post models.Post
	rd := RequestDescriptor{Method: http.MethodPost, Path: "/api/posts/create", Body: draft}
	if err := c.call(ctx, rd, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *RESTClient) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	rd := RequestDescriptor{Method: http.MethodGet, Path: "/api/posts/" + url.PathEscape(id)}
	if err := c.call(ctx, rd, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *RESTClient) UpdatePost(ctx context.Context, id string, draft models.PostDraft) (*models.Post, error) {
	var post models.Post
	rd := RequestDescriptor{Method: http.MethodPut, Path: "/api/posts/" + url.PathEscape(id), Body: draft}
	if err := c.call(ctx, rd, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *RESTClient) DeletePost(ctx context.Context, id string) error {
	rd := RequestDescriptor{Method: http.MethodDelete, Path: "/api/posts/" + url.PathEscape(id)}
	return c.call(ctx, rd, nil)
}

func (c *RESTClient) PostsByCategory(ctx context.Context, category models.Category) ([]models.Post, error) {
	return c.listPosts(ctx, "/api/posts/category/"+url.PathEscape(string(category)), nil)
}

func (c *RESTClient) PostsByTag(ctx context.Context, tag string) ([]models.Post, error) {
	return c.listPosts(ctx, "/api/posts/tag/"+url.PathEscape(tag), nil)
}

func (c *RESTClient) PostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	return c.listPosts(ctx, "/api/posts/user/"+url.PathEscape(userID), nil)
}

func (c *RESTClient) SearchPosts(ctx context.Context, query string) ([]models.Post, error) {
	q := url.Values{}
	q.Set("q", query)
	return c.listPosts(ctx, "/api/posts/search", q)
}

func (c *RESTClient) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	rd := RequestDescriptor{Method: http.MethodGet, Path: "/api/stats"}
	if err := c.call(ctx, rd, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *RESTClient) listPosts(ctx context.Context, path string, query url.Values) ([]models.Post, error) {
	var posts []models.Post
	rd := RequestDescriptor{Method: http.MethodGet, Path: path, Query: query}
	if err := c.call(ctx, rd, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
