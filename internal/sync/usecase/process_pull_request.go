package usecase

import (
	"context"

	"codeatlas-gateway/internal/model"
	"codeatlas-gateway/internal/sync"
	"codeatlas-gateway/pkg/github"
)

// ProcessPullRequestEvent verifies the delivery like a push, then schedules
// the review sub-flow for opened pull requests. The review is best-effort:
// it runs detached and its failures are logged, never surfaced to the
// provider — a broken review must not make GitHub mark the hook as failing.
func (uc *implUseCase) ProcessPullRequestEvent(ctx context.Context, input sync.ProcessPullRequestInput) (sync.ProcessPullRequestOutput, error) {
	event := input.Event

	project, err := uc.resolveProject(ctx, event)
	if err != nil {
		return sync.ProcessPullRequestOutput{State: sync.StateFailed}, err
	}
	if project.ID == "" {
		uc.l.Warnf(ctx, "uc.ProcessPullRequestEvent: no project for webhook %s / repo %s", event.WebhookID, event.RepositoryURL)
		return sync.ProcessPullRequestOutput{State: sync.StateIgnored}, nil
	}

	if err := uc.verifyDelivery(ctx, project, input.Payload, input.Signature, event.WebhookID); err != nil {
		return sync.ProcessPullRequestOutput{State: sync.StateRejected}, err
	}

	if event.Action != "opened" {
		return sync.ProcessPullRequestOutput{State: sync.StateIgnored}, nil
	}

	user, err := uc.users.GetOneUser(ctx, userGetOptions(project.CreatedBy))
	if err != nil {
		return sync.ProcessPullRequestOutput{State: sync.StateFailed}, err
	}
	if user.ID == 0 {
		uc.l.Errorf(ctx, "uc.ProcessPullRequestEvent: owner %d of project %s not found", project.CreatedBy, project.ID)
		return sync.ProcessPullRequestOutput{State: sync.StateFailed}, sync.ErrUserNotFound
	}

	uc.runAsync(func() {
		uc.reviewPullRequest(context.Background(), project, user, event)
	})
	return sync.ProcessPullRequestOutput{State: sync.StateCommitted, Scheduled: true}, nil
}

// reviewPullRequest fetches the PR diff, asks the analysis service for a
// review, and posts it back as an issue comment. Runs detached from the
// delivery request; every failure terminates the flow with a log line.
func (uc *implUseCase) reviewPullRequest(ctx context.Context, project model.Project, user model.User, event model.WebhookEvent) {
	diff, err := uc.github.FetchDiff(ctx, event.PRDiffURL, user.GithubToken)
	if err != nil {
		uc.l.Errorf(ctx, "uc.reviewPullRequest: diff fetch for project %s PR #%d: %v", project.ID, event.PRNumber, err)
		return
	}

	review, err := uc.relay.ReviewDiff(ctx, user.Email, project.ID, diff)
	if err != nil {
		uc.l.Errorf(ctx, "uc.reviewPullRequest: review for project %s PR #%d: %v", project.ID, event.PRNumber, err)
		return
	}

	owner, repo, err := github.SplitRepositoryURL(project.RepositoryURL)
	if err != nil {
		uc.l.Errorf(ctx, "uc.reviewPullRequest: repository url %s: %v", project.RepositoryURL, err)
		return
	}
	if err := uc.github.CreateIssueComment(ctx, owner, repo, event.PRNumber, review, user.GithubToken); err != nil {
		uc.l.Errorf(ctx, "uc.reviewPullRequest: comment on project %s PR #%d: %v", project.ID, event.PRNumber, err)
		return
	}
	uc.l.Infof(ctx, "uc.reviewPullRequest: posted review on project %s PR #%d", project.ID, event.PRNumber)
}
