package usecase

import (
	"context"
	"strings"

	"codeatlas-gateway/internal/account"
	"codeatlas-gateway/internal/model"
	userRepo "codeatlas-gateway/internal/user/repository"
)

// LinkGitHub stores the caller's GitHub token as-is. GitHub rejects bad
// tokens on the first real call, so there is no separate validation step.
func (uc *implUseCase) LinkGitHub(ctx context.Context, sc model.Scope, input account.LinkGitHubInput) error {
	token := strings.TrimSpace(input.Token)
	if token == "" {
		return account.ErrMissingArgument
	}
	return uc.users.UpdateProviderCredential(ctx, userRepo.UpdateCredentialOptions{
		UserID:   sc.UserID,
		Provider: model.SourceGitHub,
		Token:    token,
	})
}

// LinkGitLab validates against the provider before storing. A rejected
// token also clears whatever was stored before, so a stale credential can
// never linger after a failed re-link.
func (uc *implUseCase) LinkGitLab(ctx context.Context, sc model.Scope, input account.LinkGitLabInput) error {
	token := strings.TrimSpace(input.Token)
	if token == "" {
		return account.ErrMissingArgument
	}

	result := uc.gitlab.ValidateToken(ctx, token)
	if !result.IsValid {
		uc.l.Warnf(ctx, "uc.LinkGitLab: token rejected for user %d: %s", sc.UserID, result.Reason)
		if err := uc.users.UpdateProviderCredential(ctx, userRepo.UpdateCredentialOptions{
			UserID:   sc.UserID,
			Provider: model.SourceGitLab,
		}); err != nil {
			uc.l.Errorf(ctx, "uc.LinkGitLab: clear credential for user %d: %v", sc.UserID, err)
		}
		return account.ErrInvalidToken
	}

	return uc.users.UpdateProviderCredential(ctx, userRepo.UpdateCredentialOptions{
		UserID:   sc.UserID,
		Provider: model.SourceGitLab,
		Token:    token,
	})
}

// LinkAzure validates the PAT in the context of the organization before
// storing both; like LinkGitLab, rejection clears the stored credential.
func (uc *implUseCase) LinkAzure(ctx context.Context, sc model.Scope, input account.LinkAzureInput) error {
	pat := strings.TrimSpace(input.PAT)
	organization := strings.TrimSpace(input.Organization)
	if pat == "" || organization == "" {
		return account.ErrMissingArgument
	}

	result := uc.azure.ValidatePAT(ctx, pat, organization)
	if !result.IsValid {
		uc.l.Warnf(ctx, "uc.LinkAzure: PAT rejected for user %d: %s", sc.UserID, result.Reason)
		if err := uc.users.UpdateProviderCredential(ctx, userRepo.UpdateCredentialOptions{
			UserID:   sc.UserID,
			Provider: model.SourceAzure,
		}); err != nil {
			uc.l.Errorf(ctx, "uc.LinkAzure: clear credential for user %d: %v", sc.UserID, err)
		}
		return account.ErrInvalidToken
	}

	return uc.users.UpdateProviderCredential(ctx, userRepo.UpdateCredentialOptions{
		UserID:       sc.UserID,
		Provider:     model.SourceAzure,
		Token:        pat,
		Organization: organization,
	})
}
