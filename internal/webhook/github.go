package webhook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"codeatlas-gateway/internal/model"
)

// GitHubWebhookParser parses GitHub webhook payloads
type GitHubWebhookParser struct{}

func NewGitHubParser() *GitHubWebhookParser {
	return &GitHubWebhookParser{}
}

// ParsePushEvent parses GitHub push event
func (p *GitHubWebhookParser) ParsePushEvent(payload []byte) (*model.WebhookEvent, error) {
	var event struct {
		Ref        string `json:"ref"`
		Repository struct {
			HTMLURL string `json:"html_url"`
		} `json:"repository"`
		HeadCommit struct {
			ID      string `json:"id"`
			Message string `json:"message"`
		} `json:"head_commit"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse push event: %w", err)
	}

	return &model.WebhookEvent{
		Source:        model.SourceGitHub,
		EventType:     "push",
		RepositoryURL: event.Repository.HTMLURL,
		Branch:        strings.TrimPrefix(event.Ref, "refs/heads/"),
		CommitHash:    event.HeadCommit.ID,
		CommitMessage: event.HeadCommit.Message,
		ReceivedAt:    time.Now(),
	}, nil
}

// ParsePullRequestEvent parses GitHub pull request event
func (p *GitHubWebhookParser) ParsePullRequestEvent(payload []byte) (*model.WebhookEvent, error) {
	var event struct {
		Action      string `json:"action"` // opened, closed, merged, etc.
		Number      int    `json:"number"`
		PullRequest struct {
			DiffURL string `json:"diff_url"`
			Head    struct {
				Ref string `json:"ref"` // Branch name
				SHA string `json:"sha"` // Commit SHA
			} `json:"head"`
			Merged bool `json:"merged"`
		} `json:"pull_request"`
		Repository struct {
			HTMLURL string `json:"html_url"`
		} `json:"repository"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse pull request event: %w", err)
	}

	// Determine action (merged takes precedence over closed)
	action := event.Action
	if action == "closed" && event.PullRequest.Merged {
		action = "merged"
	}

	return &model.WebhookEvent{
		Source:        model.SourceGitHub,
		EventType:     "pull_request",
		RepositoryURL: event.Repository.HTMLURL,
		Branch:        event.PullRequest.Head.Ref,
		CommitHash:    event.PullRequest.Head.SHA,
		Action:        action,
		PRNumber:      event.Number,
		PRDiffURL:     event.PullRequest.DiffURL,
		ReceivedAt:    time.Now(),
	}, nil
}
