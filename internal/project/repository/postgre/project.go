package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"codeatlas-gateway/internal/model"
	repo "codeatlas-gateway/internal/project/repository"
)

const projectColumns = `id, created_by, project_name, source, repository_url, branch_name,
	webhook_id, webhook_secret, latest_commit_hash, latest_commit_message, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (model.Project, error) {
	var p model.Project
	var repositoryURL, branchName, webhookID, webhookSecret, commitHash, commitMessage sql.NullString
	err := row.Scan(
		&p.ID, &p.CreatedBy, &p.ProjectName, &p.Source, &repositoryURL, &branchName,
		&webhookID, &webhookSecret, &commitHash, &commitMessage, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return model.Project{}, err
	}
	p.RepositoryURL = repositoryURL.String
	p.BranchName = branchName.String
	p.WebhookID = webhookID.String
	p.WebhookSecret = webhookSecret.String
	p.LatestCommitHash = commitHash.String
	p.LatestCommitMessage = commitMessage.String
	return p, nil
}

// CreateProject inserts a new Project row and returns the created entity.
func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (model.Project, error) {
	source := opt.Source
	if source == "" {
		source = model.SourceManual
	}

	query := fmt.Sprintf(`
		INSERT INTO projects (id, created_by, project_name, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s`, projectColumns)

	p, err := scanProject(r.db.QueryRowContext(ctx, query, opt.ID, opt.CreatedBy, opt.ProjectName, source))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return model.Project{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOneProject retrieves a single Project by the provided match keys (OR
// condition). Returns zero-value Project (ID == "") when not found — do NOT
// return error for not-found.
func (r *implRepository) GetOneProject(ctx context.Context, opt repo.GetOneProjectOptions) (model.Project, error) {
	mods, args := r.buildGetOneQuery(opt)
	if mods == "" {
		return model.Project{}, nil
	}
	query := fmt.Sprintf("SELECT %s FROM projects WHERE %s LIMIT 1", projectColumns, mods)

	p, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProject"), err)
		return model.Project{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListProjectsByIDs returns the registry rows for the given ids.
func (r *implRepository) ListProjectsByIDs(ctx context.Context, ids []string) ([]model.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	mods, args := r.buildInClause(ids)
	query := fmt.Sprintf("SELECT %s FROM projects WHERE id IN (%s)", projectColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjectsByIDs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjectsByIDs"), err)
		return nil, repo.ErrFailedToList
	}
	return projects, nil
}

// UpdateProjectSource records branch/source/repository bookkeeping.
func (r *implRepository) UpdateProjectSource(ctx context.Context, opt repo.UpdateSourceOptions) error {
	const query = `
		UPDATE projects
		SET source = $1,
		    branch_name = COALESCE(NULLIF($2, ''), branch_name),
		    repository_url = COALESCE(NULLIF($3, ''), repository_url),
		    updated_at = NOW()
		WHERE id = $4`

	if _, err := r.db.ExecContext(ctx, query, opt.Source, opt.BranchName, opt.RepositoryURL, opt.ID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProjectSource"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// UpdateProjectCommit overwrites the latest-commit fields in one statement.
// Racing deliveries each carry their own authoritative commit hash, so the
// last write wins without a read-modify-write cycle.
func (r *implRepository) UpdateProjectCommit(ctx context.Context, opt repo.UpdateCommitOptions) error {
	const query = `
		UPDATE projects
		SET latest_commit_hash = $1, latest_commit_message = $2, updated_at = NOW()
		WHERE id = $3`

	if _, err := r.db.ExecContext(ctx, query, opt.CommitHash, opt.CommitMessage, opt.ID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProjectCommit"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// UpdateProjectWebhook persists the registration result as one atomic write.
func (r *implRepository) UpdateProjectWebhook(ctx context.Context, opt repo.UpdateWebhookOptions) error {
	const query = `
		UPDATE projects
		SET webhook_id = $1, webhook_secret = $2, repository_url = $3, branch_name = $4, updated_at = NOW()
		WHERE id = $5`

	if _, err := r.db.ExecContext(ctx, query, opt.WebhookID, opt.WebhookSecret, opt.RepositoryURL, opt.BranchName, opt.ID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProjectWebhook"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// UpdateProjectWebhookID backfills only the hook id. Used by the
// first-contact acceptance path; the secret is deliberately left untouched.
func (r *implRepository) UpdateProjectWebhookID(ctx context.Context, id, webhookID string) error {
	const query = `UPDATE projects SET webhook_id = $1, updated_at = NOW() WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, webhookID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProjectWebhookID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteProject removes a Project by ID.
func (r *implRepository) DeleteProject(ctx context.Context, id string) error {
	const query = `DELETE FROM projects WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProject"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
