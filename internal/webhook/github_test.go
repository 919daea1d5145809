package webhook

import (
	"testing"

	"codeatlas-gateway/internal/model"
)

func TestParsePushEvent(t *testing.T) {
	p := NewGitHubParser()

	t.Run("Full Payload", func(t *testing.T) {
		payload := []byte(`{
			"ref": "refs/heads/main",
			"repository": {"html_url": "https://github.com/acme/widgets"},
			"head_commit": {"id": "abc123", "message": "fix race"}
		}`)
		event, err := p.ParsePushEvent(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Source != model.SourceGitHub || event.EventType != "push" {
			t.Errorf("unexpected event identity: %+v", event)
		}
		if event.RepositoryURL != "https://github.com/acme/widgets" {
			t.Errorf("unexpected repository url %s", event.RepositoryURL)
		}
		if event.Branch != "main" {
			t.Errorf("expected branch main, got %s", event.Branch)
		}
		if event.CommitHash != "abc123" || event.CommitMessage != "fix race" {
			t.Errorf("unexpected commit fields: %+v", event)
		}
	})

	t.Run("Branch With Slashes", func(t *testing.T) {
		payload := []byte(`{"ref": "refs/heads/feature/sync/v2"}`)
		event, err := p.ParsePushEvent(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Branch != "feature/sync/v2" {
			t.Errorf("expected full branch path, got %s", event.Branch)
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		if _, err := p.ParsePushEvent([]byte("{not json")); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestParsePullRequestEvent(t *testing.T) {
	p := NewGitHubParser()

	t.Run("Opened", func(t *testing.T) {
		payload := []byte(`{
			"action": "opened",
			"number": 42,
			"pull_request": {
				"diff_url": "https://github.com/acme/widgets/pull/42.diff",
				"head": {"ref": "feature/x", "sha": "def456"},
				"merged": false
			},
			"repository": {"html_url": "https://github.com/acme/widgets"}
		}`)
		event, err := p.ParsePullRequestEvent(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Action != "opened" || event.PRNumber != 42 {
			t.Errorf("unexpected action/number: %+v", event)
		}
		if event.PRDiffURL != "https://github.com/acme/widgets/pull/42.diff" {
			t.Errorf("unexpected diff url %s", event.PRDiffURL)
		}
		if event.Branch != "feature/x" || event.CommitHash != "def456" {
			t.Errorf("unexpected head fields: %+v", event)
		}
	})

	t.Run("Closed And Merged Becomes Merged", func(t *testing.T) {
		payload := []byte(`{
			"action": "closed",
			"number": 42,
			"pull_request": {"merged": true}
		}`)
		event, err := p.ParsePullRequestEvent(payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Action != "merged" {
			t.Errorf("expected merged, got %s", event.Action)
		}
	})
}
