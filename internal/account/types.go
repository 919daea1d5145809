package account

// --- UseCase Inputs ---

type LinkGitHubInput struct {
	Token string
}

type LinkGitLabInput struct {
	Token string
}

type LinkAzureInput struct {
	PAT          string
	Organization string
}

type ListAzureRepositoriesInput struct {
	ProjectID string
}

type ListAzureBranchesInput struct {
	ProjectID    string
	RepositoryID string
}

// --- UseCase Outputs ---

// RepositoryView is one provider repository available to the linked account.
type RepositoryView struct {
	ID            string
	Name          string
	URL           string
	DefaultBranch string
}

// AzureProjectView is one Azure DevOps project in the linked organization.
type AzureProjectView struct {
	ID   string
	Name string
}
