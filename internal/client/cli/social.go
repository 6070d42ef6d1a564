package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/superapp/internal/client/models"
)

func (a *App) Feed(ctx context.Context) error {
	posts, err := a.activityService.Feed(ctx)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "Feed is empty")
		return nil
	}
	for _, p := range posts {
		printPost(a, p)
	}
	return nil
}

func printPost(a *App, p models.Post) {
	fmt.Fprintf(a.out, "[%s] %s  %s  (%d likes)\n", p.ID, p.Author, p.CreatedAt, p.LikesCount)
	for _, line := range strings.Split(p.Content, "\n") {
		fmt.Fprintf(a.out, "    %s\n", line)
	}
}

var visibilities = map[string]struct{}{
	models.VisibilityPublic:  {},
	models.VisibilityFriends: {},
	models.VisibilityPrivate: {},
}

// Post reads the content and visibility, publishes the post and reports
// earned tokens. A blank visibility means public.
func (a *App) Post(ctx context.Context) error {
	content, err := getMultiline(a.reader, "Enter post content", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		return ErrEmptyInput
	}

	visibility, err := getSimpleText(a.reader, "Visibility (public, friends, private) [public]", a.out)
	if err != nil {
		return err
	}
	if _, ok := visibilities[visibility]; visibility != "" && !ok {
		return fmt.Errorf("unknown visibility %q", visibility)
	}

	p, err := a.activityService.Post(ctx, content, visibility)
	if p != nil {
		fmt.Fprintf(a.out, "Posted %s", p.PostID)
		if p.TokensEarned > 0 {
			fmt.Fprintf(a.out, ", earned %d tokens", p.TokensEarned)
		}
		fmt.Fprintln(a.out)
	}
	return err
}
