package gitrelay

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	logger "github.com/sirupsen/logrus"

	"github.com/chartops/chartsync/internal/domain/entities"
	"github.com/chartops/chartsync/internal/domain/repositories"
)

// GitPublisherRepository implements repositories.PublisherRepository with a
// fresh clone per run: clone the publish repository, write the relay file,
// commit when the worktree is dirty, and push. The clone lives in a
// temporary directory that is removed afterwards.
type GitPublisherRepository struct{}

// NewPublisherRepository creates a Git publisher.
func NewPublisherRepository() repositories.PublisherRepository {
	return &GitPublisherRepository{}
}

// Publish stores the relay content in the publish repository. It returns
// true when a new commit was pushed; an unchanged file is a successful no-op.
func (r *GitPublisherRepository) Publish(
	ctx context.Context,
	cfg entities.PublishConfig,
	content []byte,
) (bool, error) {
	dir, err := os.MkdirTemp("", "chartsync-publish-*")
	if err != nil {
		return false, fmt.Errorf("failed to create clone directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	auth := buildAuth(cfg.Token)

	repo, err := cloneRepo(ctx, dir, cfg, auth)
	if err != nil {
		return false, err
	}

	// Skip the whole write/stage/commit cycle when the published file
	// already carries this content.
	if current, readErr := os.ReadFile(filepath.Join(dir, cfg.RelayPath)); readErr == nil {
		if entities.RelayContentEqual(current, content) {
			logger.Debugf("Relay file unchanged in %s", cfg.RepoURL)
			return false, nil
		}
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to open worktree: %w", err)
	}

	if writeErr := writeRelayFile(dir, cfg.RelayPath, content); writeErr != nil {
		return false, writeErr
	}

	if _, addErr := worktree.Add(cfg.RelayPath); addErr != nil {
		return false, fmt.Errorf("failed to stage %q: %w", cfg.RelayPath, addErr)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", err)
	}
	if status.IsClean() {
		logger.Debugf("Relay file unchanged in %s", cfg.RepoURL)
		return false, nil
	}

	if commitErr := commit(worktree, cfg); commitErr != nil {
		return false, commitErr
	}

	if pushErr := repo.PushContext(ctx, &git.PushOptions{Auth: auth}); pushErr != nil {
		if errors.Is(pushErr, git.NoErrAlreadyUpToDate) {
			return true, nil
		}
		return false, fmt.Errorf("failed to push to %q: %w", cfg.RepoURL, pushErr)
	}

	return true, nil
}

// buildAuth returns basic auth for the token, or nil when no token is set
// (local and unauthenticated remotes).
func buildAuth(token string) transport.AuthMethod {
	if token == "" {
		return nil
	}
	// The username is ignored by token-authenticated HTTPS remotes but must
	// be non-empty.
	return &githttp.BasicAuth{Username: "chartsync", Password: token}
}

func cloneRepo(
	ctx context.Context,
	dir string,
	cfg entities.PublishConfig,
	auth transport.AuthMethod,
) (*git.Repository, error) {
	opts := &git.CloneOptions{
		URL:          cfg.RepoURL,
		Auth:         auth,
		SingleBranch: true,
	}
	if cfg.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(cfg.Branch)
	}

	repo, err := git.PlainCloneContext(ctx, dir, false, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to clone %q: %w", cfg.RepoURL, err)
	}
	return repo, nil
}

func writeRelayFile(dir, relayPath string, content []byte) error {
	target := filepath.Join(dir, relayPath)
	if mkdirErr := os.MkdirAll(filepath.Dir(target), 0o755); mkdirErr != nil {
		return fmt.Errorf("failed to create relay directory: %w", mkdirErr)
	}
	if writeErr := os.WriteFile(target, content, 0o644); writeErr != nil {
		return fmt.Errorf("failed to write relay file: %w", writeErr)
	}
	return nil
}

func commit(worktree *git.Worktree, cfg entities.PublishConfig) error {
	_, err := worktree.Commit(cfg.CommitMessage, &git.CommitOptions{
		Author: &object.Signature{
			Name:  cfg.AuthorName,
			Email: cfg.AuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit relay file: %w", err)
	}
	return nil
}
