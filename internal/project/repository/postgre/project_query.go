package postgre

import (
	"fmt"
	"strings"

	repo "codeatlas-gateway/internal/project/repository"
)

// buildGetOneQuery builds the WHERE clause + args for GetOneProject.
// All non-empty keys are alternative matches (OR): a webhook delivery may be
// resolvable by hook id, by the payload URL, or by the URL with its .git
// suffix stripped.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneProjectOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.WebhookID != "" {
		conditions = append(conditions, fmt.Sprintf("webhook_id = $%d", idx))
		args = append(args, opt.WebhookID)
		idx++
	}
	for _, u := range opt.RepositoryURLs {
		if u == "" {
			continue
		}
		conditions = append(conditions, fmt.Sprintf("repository_url = $%d", idx))
		args = append(args, u)
		idx++
	}

	return strings.Join(conditions, " OR "), args
}

// buildInClause builds a $1,$2,... placeholder list for an IN query.
func (r *implRepository) buildInClause(ids []string) (string, []any) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	return strings.Join(placeholders, ", "), args
}
