package usecase

import (
	"bytes"
	"fmt"
	"strings"

	userRepo "codeatlas-gateway/internal/user/repository"
)

// zipMagic is the local-file-header signature every non-empty zip starts with.
var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// repositoryURLCandidates returns every form a stored repository URL may
// take for the given payload URL: clone URLs are saved with a .git suffix,
// webhook payloads carry the web URL without it.
func repositoryURLCandidates(url string) []string {
	if url == "" {
		return nil
	}
	candidates := []string{url}
	if trimmed := strings.TrimSuffix(url, ".git"); trimmed != url {
		candidates = append(candidates, trimmed)
	} else {
		candidates = append(candidates, url+".git")
	}
	return candidates
}

func isZipArchive(data []byte) bool {
	return len(data) >= len(zipMagic) && bytes.Equal(data[:len(zipMagic)], zipMagic)
}

func userGetOptions(id int64) userRepo.GetOneUserOptions {
	return userRepo.GetOneUserOptions{ID: id}
}

// splitAzurePath takes the "project/repositoryId" form Azure DevOps
// requests use in place of a repository URL.
func splitAzurePath(path string) (project, repositoryID string, err error) {
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid azure repository path %q", path)
	}
	return parts[0], parts[1], nil
}
