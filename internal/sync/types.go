package sync

import (
	"encoding/json"

	"codeatlas-gateway/internal/model"
)

// State is the position of one delivery or upload in the sync pipeline.
type State string

const (
	StateReceived  State = "RECEIVED"
	StateResolved  State = "RESOLVED"
	StateFetching  State = "FETCHING"
	StateRelaying  State = "RELAYING"
	StateCommitted State = "COMMITTED"

	// Terminal: bad signature, malformed payload. No retry.
	StateRejected State = "REJECTED"
	// Terminal: unresolved project or branch mismatch. Deliberately
	// success-shaped so providers do not disable the webhook.
	StateIgnored State = "IGNORED"
	// Terminal: provider or downstream failure. Safe to retry.
	StateFailed State = "FAILED"
)

// SignatureVerifier checks an inbound payload signature against a
// per-project shared secret.
type SignatureVerifier interface {
	Verify(payload []byte, signature, secret string) error
}

// ProcessPushInput is one inbound push delivery. Payload is the exact body
// bytes as received; the signature is computed over them.
type ProcessPushInput struct {
	Event     model.WebhookEvent
	Payload   []byte
	Signature string
}

// ProcessPushOutput reports where the delivery terminated.
type ProcessPushOutput struct {
	State     State
	ProjectID string
}

// ProcessPullRequestInput is one inbound pull_request delivery.
type ProcessPullRequestInput struct {
	Event     model.WebhookEvent
	Payload   []byte
	Signature string
}

// ProcessPullRequestOutput reports whether a review was scheduled.
type ProcessPullRequestOutput struct {
	State     State
	Scheduled bool
}

// CodebaseInput is a manual upload or sync request. Exactly one of Archive
// or RepositoryURL must be set; for azure sources RepositoryURL carries the
// repository id rather than a URL.
type CodebaseInput struct {
	ProjectID           string
	RepositoryURL       string
	Branch              string
	Source              model.Source
	IsPrivateRepository bool
	Archive             []byte
	ArchiveName         string
}

// CodebaseOutput carries the downstream service's response detail for
// interactive callers.
type CodebaseOutput struct {
	State   State
	Details json.RawMessage
}

// RegisterWebhookInput requests provider-side webhook registration for a
// project. Empty RepositoryURL/Branch fall back to the stored project
// values.
type RegisterWebhookInput struct {
	ProjectID     string
	RepositoryURL string
	Branch        string
}

// RegisterWebhookOutput returns the provider-assigned hook id.
type RegisterWebhookOutput struct {
	WebhookID string
}
