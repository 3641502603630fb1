package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/brainstorm-app/brainstorm/internal/client/models"
	"github.com/brainstorm-app/brainstorm/internal/common"
)

func (a *App) Posts(ctx context.Context) error {
	posts, err := a.posts.List(ctx)
	if err != nil {
		reportError(err)
		a.syncLoginState(ctx)
		return err
	}
	printPostList(posts)
	return nil
}

// MyPosts lists the posts authored by the current user.
func (a *App) MyPosts(ctx context.Context) error {
	sess, err := a.auth.StoredSession(ctx)
	if err != nil {
		reportError(err)
		return err
	}
	if !sess.LoggedIn() {
		printlnFn("Not logged in.")
		return common.ErrNotLoggedIn
	}

	posts, err := a.posts.ByUser(ctx, sess.UserID)
	if err != nil {
		reportError(err)
		a.syncLoginState(ctx)
		return err
	}
	printPostList(posts)
	return nil
}

// postForm prompts for the fields of a post draft. initial supplies the
// defaults when editing; pass nil when creating.
func (a *App) postForm(initial *models.Post) (models.PostDraft, error) {
	var draft models.PostDraft
	cur := models.Post{}
	if initial != nil {
		cur = *initial
	}

	var err error
	if draft.Title, err = a.promptDefault("Title", cur.Title); err != nil {
		return draft, err
	}

	desc, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return draft, err
	}
	if desc == "" {
		desc = cur.Description
	}
	draft.Description = desc

	category, err := a.promptDefault("Category (gaming|development|research)", string(cur.Category))
	if err != nil {
		return draft, err
	}
	draft.Category = models.Category(category)

	if draft.TeamSize, err = a.promptDefault("Team size", cur.TeamSize); err != nil {
		return draft, err
	}
	if draft.SkillLevel, err = a.promptDefault("Skill level", cur.SkillLevel); err != nil {
		return draft, err
	}
	if draft.Deadline, err = a.promptDefault("Deadline", cur.Deadline); err != nil {
		return draft, err
	}

	tags, err := GetList(a.reader, "Tags", os.Stdout)
	if err != nil {
		return draft, err
	}
	if tags == nil {
		tags = cur.Tags
	}
	draft.Tags = tags

	if draft.ContactMethod, err = a.promptDefault("Contact method", cur.ContactMethod); err != nil {
		return draft, err
	}
	if draft.ContactInfo, err = a.promptDefault("Contact info", cur.ContactInfo); err != nil {
		return draft, err
	}

	return draft, nil
}

// Add creates a new post.
func (a *App) Add(ctx context.Context) error {
	draft, err := a.postForm(nil)
	if err != nil {
		return err
	}

	post, err := a.posts.Create(ctx, draft)
	if err != nil {
		reportError(err)
		a.syncLoginState(ctx)
		return err
	}
	printlnFn(fmt.Sprintf("Created post %s.", post.ID))
	return nil
}

// Edit updates an existing post, prompting with its current values.
func (a *App) Edit(ctx context.Context, id string) error {
	current, err := a.posts.Get(ctx, id)
	if err != nil {
		reportError(err)
		a.syncLoginState(ctx)
		return err
	}

	draft, err := a.postForm(current)
	if err != nil {
		return err
	}

	post, err := a.posts.Update(ctx, id, draft)
	if err != nil {
		reportError(err)
		a.syncLoginState(ctx)
		return err
	}
	printlnFn(fmt.Sprintf("Updated post %s.", post.ID))
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.posts.Delete(ctx, id); err != nil {
		reportError(err)
		a.syncLoginState(ctx)
		return err
	}
	printlnFn("Deleted.")
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	post, err := a.posts.Get(ctx, id)
	if err != nil {
		reportError(err)
		return err
	}
	printPost(post)
	return nil
}

func (a *App) Search(ctx context.Context, query string) error {
	posts, err := a.posts.Search(ctx, query)
	if err != nil {
		reportError(err)
		return err
	}
	printPostList(posts)
	return nil
}

func (a *App) Category(ctx context.Context, name string) error {
	posts, err := a.posts.ByCategory(ctx, models.Category(name))
	if err != nil {
		reportError(err)
		return err
	}
	printPostList(posts)
	return nil
}

func (a *App) Tag(ctx context.Context, name string) error {
	posts, err := a.posts.ByTag(ctx, name)
	if err != nil {
		reportError(err)
		return err
	}
	printPostList(posts)
	return nil
}

// Dashboard renders the three category sections and the stats. Sections
// that failed to load are skipped; an error banner is shown once.
func (a *App) Dashboard(ctx context.Context) error {
	d, err := a.posts.LoadDashboard(ctx)
	if err != nil {
		reportError(err)
		a.syncLoginState(ctx)
	}

	sections := []struct {
		name  string
		posts []models.Post
	}{
		{"Gaming", d.Gaming},
		{"Development", d.Development},
		{"Research", d.Research},
	}
	for _, s := range sections {
		if s.posts == nil {
			continue
		}
		printlnFn("== " + s.name + " ==")
		printPostList(s.posts)
	}
	if d.Stats != nil {
		printStats(d.Stats)
	}
	return err
}

func (a *App) Stats(ctx context.Context) error {
	stats, err := a.posts.Stats(ctx)
	if err != nil {
		reportError(err)
		return err
	}
	printStats(stats)
	return nil
}
