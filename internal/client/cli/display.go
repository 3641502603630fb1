package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/brainstorm-app/brainstorm/internal/client/apierrors"
	"github.com/brainstorm-app/brainstorm/internal/client/models"
	"github.com/brainstorm-app/brainstorm/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// reportError renders a failed operation. Field errors are printed next to
// their field name and suppress the general banner; only a failure without
// field detail shows the title and message.
func reportError(err error) {
	var fe *services.FormError
	if errors.As(err, &fe) {
		printFields(fe.Fields)
		return
	}

	outcome := apierrors.ClassifyError(err)
	if outcome.HasFieldErrors() {
		printFields(outcome.FieldErrors)
		return
	}
	printlnFn(fmt.Sprintf("%s: %s", outcome.Title, outcome.Message))
}

func printFields(fields map[string]string) {
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)
	for _, f := range names {
		printlnFn(fmt.Sprintf("  %s: %s", f, fields[f]))
	}
}

func printPost(p *models.Post) {
	printlnFn(fmt.Sprintf("[%s] %s (%s)", p.ID, p.Title, p.Category))
	if p.Description != "" {
		printlnFn("  " + p.Description)
	}
	if len(p.Tags) > 0 {
		printlnFn(fmt.Sprintf("  tags: %v", p.Tags))
	}
	if p.ContactInfo != "" {
		printlnFn(fmt.Sprintf("  contact: %s (%s)", p.ContactInfo, p.ContactMethod))
	}
}

func printPostList(posts []models.Post) {
	if len(posts) == 0 {
		printlnFn("No posts found.")
		return
	}
	for _, p := range posts {
		printlnFn(fmt.Sprintf("[%s] %-12s %s", p.ID, p.Category, p.Title))
	}
}

func printStats(s *models.Stats) {
	printlnFn(fmt.Sprintf("active: %d  collaborators: %d  completed: %d  new today: %d",
		s.ActiveProjects, s.Collaborators, s.CompletedProjects, s.NewToday))
}
