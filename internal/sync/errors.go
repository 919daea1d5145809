package sync

import "errors"

var (
	// Verification errors — reject, no retry.
	ErrMissingSignature = errors.New("no signature provided")
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// Not-found conditions — webhook deliveries no-op on these; interactive
	// callers see them as 404s.
	ErrProjectNotFound = errors.New("project not found")
	ErrUserNotFound    = errors.New("user not found")

	// Configuration errors — onboarding gaps, fatal for the request.
	ErrMissingCredential = errors.New("provider credential not found")
	ErrWebhookExists     = errors.New("webhook already registered for project")

	// Transport errors — retryable by nature of the event source.
	ErrDownloadFailed = errors.New("repository download failed")
	ErrRelayFailed    = errors.New("failed to relay codebase to analysis service")

	// Upload validation — rejected before any network call.
	ErrArchiveTooLarge = errors.New("uploaded archive exceeds size limit")
	ErrInvalidArchive  = errors.New("uploaded file is not a zip archive")
	ErrMissingPayload  = errors.New("project id and (file or repository) are required")
)
