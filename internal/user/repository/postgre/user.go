package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"codeatlas-gateway/internal/model"
	repo "codeatlas-gateway/internal/user/repository"
)

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == 0) when not found — do NOT return error for
// not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
		idx++
	}
	if len(conditions) == 0 {
		return model.User{}, nil
	}

	query := fmt.Sprintf(`
		SELECT id, name, email, github_token, gitlab_token, azure_access_token,
		       default_azure_organization, created_at, updated_at
		FROM users WHERE %s LIMIT 1`, strings.Join(conditions, " AND "))

	var u model.User
	var githubToken, gitlabToken, azureToken, azureOrg sql.NullString
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &githubToken, &gitlabToken, &azureToken,
		&azureOrg, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	u.GithubToken = githubToken.String
	u.GitlabToken = gitlabToken.String
	u.AzureAccessToken = azureToken.String
	u.DefaultAzureOrganization = azureOrg.String
	return u, nil
}

// UpdateProviderCredential writes one provider's credential columns. Empty
// token clears the credential.
func (r *implRepository) UpdateProviderCredential(ctx context.Context, opt repo.UpdateCredentialOptions) error {
	var query string
	args := []any{opt.Token, opt.UserID}

	switch opt.Provider {
	case model.SourceGitHub:
		query = `UPDATE users SET github_token = NULLIF($1, ''), updated_at = NOW() WHERE id = $2`
	case model.SourceGitLab:
		query = `UPDATE users SET gitlab_token = NULLIF($1, ''), updated_at = NOW() WHERE id = $2`
	case model.SourceAzure:
		query = `UPDATE users
			SET azure_access_token = NULLIF($1, ''),
			    default_azure_organization = NULLIF($2, ''),
			    updated_at = NOW()
			WHERE id = $3`
		args = []any{opt.Token, opt.Organization, opt.UserID}
	default:
		return repo.ErrUnknownProvider
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProviderCredential"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
