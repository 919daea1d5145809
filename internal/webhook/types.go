package webhook

// SecurityConfig holds webhook security settings. Signature secrets are
// per-project and live in the registry, not here.
type SecurityConfig struct {
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute
}
