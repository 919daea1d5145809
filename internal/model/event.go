package model

import "time"

// WebhookEvent is a parsed inbound provider event. It is consumed once per
// delivery and never persisted.
type WebhookEvent struct {
	Source        Source
	EventType     string // push, pull_request
	WebhookID     string // provider-assigned hook id from the delivery headers
	RepositoryURL string // repository html_url from the payload
	Branch        string
	CommitHash    string // head commit id (push)
	CommitMessage string // head commit message (push)
	Action        string // opened, closed, ... (pull_request)
	PRNumber      int    // pull request number
	PRDiffURL     string // pull request diff URL
	ReceivedAt    time.Time
}
