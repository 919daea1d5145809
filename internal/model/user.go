package model

import "time"

// User holds account identity plus per-provider credentials. The sync core
// reads credentials to authenticate outbound provider calls; it only writes
// them to clear a token found invalid during validation.
type User struct {
	ID                       int64
	Name                     string
	Email                    string
	GithubToken              string
	GitlabToken              string
	AzureAccessToken         string
	DefaultAzureOrganization string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}
