package usecase

import (
	"context"
	"errors"
	"testing"

	"codeatlas-gateway/internal/model"
	projectRepo "codeatlas-gateway/internal/project/repository"
	"codeatlas-gateway/internal/sync"
	userRepo "codeatlas-gateway/internal/user/repository"
)

func testPullRequestInput(action string) sync.ProcessPullRequestInput {
	return sync.ProcessPullRequestInput{
		Event: model.WebhookEvent{
			Source:        model.SourceGitHub,
			EventType:     "pull_request",
			WebhookID:     "12345",
			RepositoryURL: "https://github.com/acme/widgets",
			Action:        action,
			PRNumber:      42,
			PRDiffURL:     "https://github.com/acme/widgets/pull/42.diff",
		},
		Payload:   []byte(`{"action":"` + action + `"}`),
		Signature: "sha256=deadbeef",
	}
}

func TestProcessPullRequestEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Opened PR Schedules Review And Comments", func(t *testing.T) {
		d := newDeps()
		d.projects.getOneFunc = func(opt projectRepo.GetOneProjectOptions) (model.Project, error) {
			return testProject(), nil
		}
		d.users.getOneFunc = func(opt userRepo.GetOneUserOptions) (model.User, error) {
			return testOwner(), nil
		}
		var commented string
		d.github.commentFunc = func(owner, repo string, number int, comment, token string) error {
			if owner != "acme" || repo != "widgets" || number != 42 {
				t.Errorf("unexpected comment target %s/%s#%d", owner, repo, number)
			}
			commented = comment
			return nil
		}
		d.relay.reviewFunc = func(email, projectID string, diff []byte) (string, error) {
			if string(diff) != "diff" {
				t.Errorf("expected fetched diff to reach the relay, got %q", diff)
			}
			return "consider a mutex here", nil
		}
		uc := d.build(Config{})

		out, err := uc.ProcessPullRequestEvent(ctx, testPullRequestInput("opened"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Scheduled {
			t.Error("expected review to be scheduled")
		}
		if commented != "consider a mutex here" {
			t.Errorf("expected review text posted as comment, got %q", commented)
		}
	})

	t.Run("Non-Opened Action Ignored", func(t *testing.T) {
		d := newDeps()
		d.projects.getOneFunc = func(opt projectRepo.GetOneProjectOptions) (model.Project, error) {
			return testProject(), nil
		}
		d.github.fetchDiffFunc = func(diffURL, token string) ([]byte, error) {
			t.Error("diff fetch must not run for non-opened actions")
			return nil, nil
		}
		uc := d.build(Config{})

		out, err := uc.ProcessPullRequestEvent(ctx, testPullRequestInput("closed"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.State != sync.StateIgnored || out.Scheduled {
			t.Errorf("expected IGNORED without scheduling, got %+v", out)
		}
	})

	t.Run("Invalid Signature Rejects", func(t *testing.T) {
		d := newDeps()
		d.projects.getOneFunc = func(opt projectRepo.GetOneProjectOptions) (model.Project, error) {
			return testProject(), nil
		}
		d.verifier.verifyFunc = func(payload []byte, signature, secret string) error {
			return errors.New("bad mac")
		}
		uc := d.build(Config{})

		_, err := uc.ProcessPullRequestEvent(ctx, testPullRequestInput("opened"))
		if !errors.Is(err, sync.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("Review Failure Stays Out Of The Delivery Response", func(t *testing.T) {
		d := newDeps()
		d.projects.getOneFunc = func(opt projectRepo.GetOneProjectOptions) (model.Project, error) {
			return testProject(), nil
		}
		d.users.getOneFunc = func(opt userRepo.GetOneUserOptions) (model.User, error) {
			return testOwner(), nil
		}
		d.relay.reviewFunc = func(email, projectID string, diff []byte) (string, error) {
			return "", errors.New("review model offline")
		}
		d.github.commentFunc = func(owner, repo string, number int, comment, token string) error {
			t.Error("comment must not be posted when review fails")
			return nil
		}
		uc := d.build(Config{})

		out, err := uc.ProcessPullRequestEvent(ctx, testPullRequestInput("opened"))
		if err != nil {
			t.Fatalf("review failures must not fail the delivery: %v", err)
		}
		if !out.Scheduled {
			t.Error("expected review to be scheduled despite downstream failure")
		}
	})
}
