package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brainstorm-app/brainstorm/internal/client/models"
)

func validDraft() models.PostDraft {
	return models.PostDraft{
		Title:       "Co-op roguelike",
		Description: "Looking for a pixel artist",
		Category:    models.CategoryGaming,
		ContactInfo: "discord: ada#1234",
	}
}

func TestCreate_Valid(t *testing.T) {
	fc := &fakeClient{CreateRet: &models.Post{ID: "p1", Title: "Co-op roguelike"}}
	svc := NewPostsService(fc)

	post, err := svc.Create(context.Background(), validDraft())
	require.NoError(t, err)
	require.Equal(t, "p1", post.ID)
	require.Equal(t, "Co-op roguelike", fc.LastDraft.Title)
}

func TestCreate_ValidationBlocksCall(t *testing.T) {
	fc := &fakeClient{}
	svc := NewPostsService(fc)

	_, err := svc.Create(context.Background(), models.PostDraft{})

	var fe *FormError
	require.ErrorAs(t, err, &fe)
	require.Contains(t, fe.Fields, "title")
	require.Empty(t, fc.LastDraft.Title)
}

func TestUpdate_ValidationApplies(t *testing.T) {
	svc := NewPostsService(&fakeClient{})

	draft := validDraft()
	draft.Description = ""
	_, err := svc.Update(context.Background(), "p1", draft)

	var fe *FormError
	require.ErrorAs(t, err, &fe)
	require.Contains(t, fe.Fields, "description")
}

func TestDelete(t *testing.T) {
	fc := &fakeClient{}
	svc := NewPostsService(fc)

	require.NoError(t, svc.Delete(context.Background(), "p9"))
	require.Equal(t, []string{"p9"}, fc.DeletedIDs)
}

func TestByCategory_RejectsUnknown(t *testing.T) {
	svc := NewPostsService(&fakeClient{})

	_, err := svc.ByCategory(context.Background(), models.Category("music"))

	var fe *FormError
	require.ErrorAs(t, err, &fe)
	require.Contains(t, fe.Fields, "category")
}

func TestSearch_TrimsAndSkipsEmpty(t *testing.T) {
	fc := &fakeClient{SearchRet: []models.Post{{ID: "p1"}}}
	svc := NewPostsService(fc)

	posts, err := svc.Search(context.Background(), "  rogue  ")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "rogue", fc.LastSearch)

	posts, err = svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	require.Nil(t, posts)
	require.Equal(t, "rogue", fc.LastSearch, "blank query must not hit the server")
}

func TestLoadDashboard_AllSectionsLoad(t *testing.T) {
	fc := &fakeClient{
		ByCategoryRet: map[models.Category][]models.Post{
			models.CategoryGaming:      {{ID: "g1"}},
			models.CategoryDevelopment: {{ID: "d1"}, {ID: "d2"}},
			models.CategoryResearch:    {{ID: "r1"}},
		},
		StatsRet: &models.Stats{ActiveProjects: 4},
	}
	svc := NewPostsService(fc)

	d, err := svc.LoadDashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, d.Gaming, 1)
	require.Len(t, d.Development, 2)
	require.Len(t, d.Research, 1)
	require.Equal(t, 4, d.Stats.ActiveProjects)
}

func TestLoadDashboard_PartialFailureKeepsLoadedSections(t *testing.T) {
	statsErr := errors.New("stats down")
	fc := &fakeClient{
		ByCategoryRet: map[models.Category][]models.Post{
			models.CategoryGaming:      {{ID: "g1"}},
			models.CategoryDevelopment: {{ID: "d1"}},
		},
		ByCategoryErr: map[models.Category]error{
			models.CategoryResearch: errors.New("research down"),
		},
		StatsErr: statsErr,
	}
	svc := NewPostsService(fc)

	d, err := svc.LoadDashboard(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, statsErr)

	require.Len(t, d.Gaming, 1)
	require.Len(t, d.Development, 1)
	require.Nil(t, d.Research)
	require.Nil(t, d.Stats)
}
