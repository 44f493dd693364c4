package scan

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v57/github"

	"repopress/internal/logging"
)

// GitHubFetcher builds Snapshots from remote GitHub repositories.
type GitHubFetcher struct {
	client *github.Client
	opts   Options
	logger *logging.Logger
}

// NewGitHubFetcher creates a fetcher. An empty token yields unauthenticated
// requests, subject to much lower rate limits.
func NewGitHubFetcher(token string, opts Options, logger *logging.Logger) *GitHubFetcher {
	if logger == nil {
		logger = logging.Nop()
	}
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &GitHubFetcher{
		client: client,
		opts:   opts,
		logger: logger.Named("github"),
	}
}

// ParseRepoURL extracts owner and repository name from a GitHub URL or an
// owner/name shorthand.
func ParseRepoURL(url string) (owner, name string, err error) {
	s := strings.TrimSuffix(strings.TrimSpace(url), "/")
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "github.com/")
	s = strings.TrimSuffix(s, ".git")

	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository URL: %q (want owner/name)", url)
	}
	return parts[0], parts[1], nil
}

// FetchRepository traverses a repository iteratively and assembles a
// Snapshot. Binary and ignored files get placeholders; everything else is
// downloaded through the contents API.
func (f *GitHubFetcher) FetchRepository(ctx context.Context, owner, name string) (*Snapshot, error) {
	snap := &Snapshot{
		Files:  make(map[string]string),
		Readme: f.fetchReadme(ctx, owner, name),
	}

	var structure strings.Builder
	fmt.Fprintf(&structure, "Repository Structure: %s\n", name)

	dirs := []string{""}
	for len(dirs) > 0 {
		path := dirs[len(dirs)-1]
		dirs = dirs[:len(dirs)-1]

		_, entries, _, err := f.client.Repositories.GetContents(ctx, owner, name, path, nil)
		if err != nil {
			return nil, fmt.Errorf("listing %s/%s at %q: %w", owner, name, path, err)
		}

		for _, entry := range entries {
			entryPath := entry.GetPath()
			switch entry.GetType() {
			case "dir":
				structure.WriteString(entryPath + "/\n")
				dirs = append(dirs, entryPath)
			default:
				structure.WriteString(entryPath + "\n")
				snap.Files[entryPath] = f.fetchFile(ctx, owner, name, entry)
			}
		}
	}

	snap.Structure = strings.TrimRight(structure.String(), "\n")
	f.logger.Info("Repository fetch complete", map[string]interface{}{
		"repo":  owner + "/" + name,
		"files": len(snap.Files),
	})

	return snap, nil
}

func (f *GitHubFetcher) fetchFile(ctx context.Context, owner, name string, entry *github.RepositoryContent) string {
	path := entry.GetPath()
	if IsBinaryPath(entry.GetName()) || ignoredFiles[entry.GetName()] {
		return "Skipped binary or ignored file"
	}
	if f.opts.MaxFileSize > 0 && int64(entry.GetSize()) > f.opts.MaxFileSize {
		return "Skipped large file"
	}

	file, _, _, err := f.client.Repositories.GetContents(ctx, owner, name, path, nil)
	if err != nil || file == nil {
		f.logger.Warn("Failed to fetch file", map[string]interface{}{
			"path": path,
		})
		return "Skipped due to fetch error"
	}

	content, err := file.GetContent()
	if err != nil {
		return "Skipped due to missing encoding"
	}
	if IsBinaryContent([]byte(content)) {
		return "Skipped due to unsupported encoding"
	}
	if f.opts.SummarizeLarge && shouldSummarize(path) {
		content = SummarizeLargeCode(content, maxSummaryLines)
	}
	return content
}

func (f *GitHubFetcher) fetchReadme(ctx context.Context, owner, name string) string {
	readme, _, err := f.client.Repositories.GetReadme(ctx, owner, name, nil)
	if err != nil {
		return "README not found."
	}
	content, err := readme.GetContent()
	if err != nil {
		return "README not found."
	}
	return content
}
