package cli

import (
	"context"
	"fmt"
)

func (a *App) Propose(ctx context.Context) error {
	title, err := getRequired(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	proposalType, err := getRequired(a.reader, "Proposal type", a.out)
	if err != nil {
		return err
	}
	hours, err := getInt(a.reader, "Voting duration (hours)", a.out)
	if err != nil {
		return err
	}
	if hours <= 0 {
		return fmt.Errorf("voting duration must be positive, got %d", hours)
	}

	p, err := a.activityService.Propose(ctx, title, description, proposalType, hours)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Proposal %s is %s, voting ends %s\n", p.ProposalID, p.Status, p.VotingEndsAt)
	return nil
}

func (a *App) Proposals(ctx context.Context) error {
	list, err := a.activityService.Proposals(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No proposals")
		return nil
	}
	for _, p := range list {
		fmt.Fprintf(a.out, "[%s] %s  %s  +%d/-%d\n", p.ProposalID, p.Title, p.Status, p.VotesFor, p.VotesAgainst)
	}
	return nil
}

func (a *App) Health(ctx context.Context) error {
	h, err := a.authService.Ping(ctx)
	if err != nil {
		a.setMode(ctx, ModeOffline)
		return err
	}
	a.setMode(ctx, ModeOnline)
	fmt.Fprintf(a.out, "%s (version %s, %s)\n", h.Status, h.Version, h.Timestamp)
	return nil
}
