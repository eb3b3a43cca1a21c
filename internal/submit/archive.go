package submit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
	"github.com/alexisbeaulieu97/teecraft/internal/logger"
	"github.com/alexisbeaulieu97/teecraft/pkg/diff"
	teeerrors "github.com/alexisbeaulieu97/teecraft/pkg/errors"
)

const submissionsDir = "submissions"

// ArchiveOptions configures an ArchiveSubmitter.
type ArchiveOptions struct {
	Dir         string
	AuthorName  string
	AuthorEmail string
	Logger      *logger.Logger
	Now         func() time.Time
}

// ArchiveSubmitter commits each snapshot to a local git repository as a
// YAML document, with a copy of the print image when it is a local file.
type ArchiveSubmitter struct {
	mu   sync.Mutex
	opts ArchiveOptions
	last plumbing.Hash
	// prev is the YAML form of the last archived request, loaded lazily.
	prev *string
}

// archivedSubmission is the YAML document written per submission.
type archivedSubmission struct {
	SubmittedAt   time.Time             `yaml:"submitted_at"`
	Request       customization.Request `yaml:"request"`
	ArchivedImage string                `yaml:"archived_image,omitempty"`
}

// NewArchiveSubmitter creates an ArchiveSubmitter. The repository is
// initialised on first use.
func NewArchiveSubmitter(opts ArchiveOptions) *ArchiveSubmitter {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.AuthorName == "" {
		opts.AuthorName = "teecraft"
	}
	if opts.AuthorEmail == "" {
		opts.AuthorEmail = "teecraft@localhost"
	}
	return &ArchiveSubmitter{opts: opts}
}

func (a *ArchiveSubmitter) Name() string { return "archive" }

// LastCommit returns the hash of the most recent archive commit.
func (a *ArchiveSubmitter) LastCommit() plumbing.Hash {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

// Submit writes and commits req.
func (a *ArchiveSubmitter) Submit(ctx context.Context, req customization.Request) error {
	if err := ctx.Err(); err != nil {
		return teeerrors.NewSubmissionError(a.Name(), err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	repo, err := a.openOrInit()
	if err != nil {
		return teeerrors.NewSubmissionError(a.Name(), err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return teeerrors.NewSubmissionError(a.Name(), fmt.Errorf("open worktree: %w", err))
	}

	now := a.opts.Now().UTC()
	stamp := now.Format("20060102T150405.000000000Z")
	if err := os.MkdirAll(filepath.Join(a.opts.Dir, submissionsDir), 0o755); err != nil {
		return teeerrors.NewSubmissionError(a.Name(), fmt.Errorf("create submissions dir: %w", err))
	}

	prev, hasPrev := a.previous()
	doc := archivedSubmission{SubmittedAt: now, Request: req}
	var staged []string

	if !req.Image.IsPlaceholder() && req.Image.Source != "" {
		rel := path.Join(submissionsDir, stamp+"-"+filepath.Base(req.Image.Source))
		if err := copyFile(req.Image.Source, filepath.Join(a.opts.Dir, filepath.FromSlash(rel))); err != nil {
			// The snapshot is still archived; only the image copy is skipped.
			a.opts.Logger.WithFields(map[string]any{"image": req.Image.Source}).Error(err, "archive image copy failed")
		} else {
			doc.ArchivedImage = rel
			staged = append(staged, rel)
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return teeerrors.NewSubmissionError(a.Name(), fmt.Errorf("encode submission: %w", err))
	}
	docPath := path.Join(submissionsDir, stamp+".yaml")
	if err := os.WriteFile(filepath.Join(a.opts.Dir, filepath.FromSlash(docPath)), data, 0o644); err != nil {
		return teeerrors.NewSubmissionError(a.Name(), fmt.Errorf("write submission: %w", err))
	}
	staged = append(staged, docPath)

	for _, p := range staged {
		if _, err := wt.Add(p); err != nil {
			return teeerrors.NewSubmissionError(a.Name(), fmt.Errorf("stage %s: %w", p, err))
		}
	}

	reqDoc, err := yaml.Marshal(req)
	if err != nil {
		return teeerrors.NewSubmissionError(a.Name(), fmt.Errorf("encode request: %w", err))
	}
	current := string(reqDoc)

	msg := fmt.Sprintf("Add submission %s (%s, %s/%s)", stamp, req.Build, req.Height, req.Weight)
	if hasPrev {
		if changes := diff.Changes(prev, current); changes != "" {
			msg += "\n\nChanges since previous submission:\n" + changes
		}
	}

	hash, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  a.opts.AuthorName,
			Email: a.opts.AuthorEmail,
			When:  now,
		},
	})
	if err != nil {
		return teeerrors.NewSubmissionError(a.Name(), fmt.Errorf("commit submission: %w", err))
	}

	a.last = hash
	a.prev = &current
	a.opts.Logger.WithFields(map[string]any{"commit": hash.String(), "document": docPath}).Info("submission archived")
	return nil
}

// previous returns the last archived request as YAML. The first call in a
// process reads the newest document from disk.
func (a *ArchiveSubmitter) previous() (string, bool) {
	if a.prev != nil {
		return *a.prev, true
	}

	docs, err := filepath.Glob(filepath.Join(a.opts.Dir, submissionsDir, "*.yaml"))
	if err != nil || len(docs) == 0 {
		return "", false
	}
	sort.Strings(docs)

	data, err := os.ReadFile(docs[len(docs)-1])
	if err != nil {
		return "", false
	}
	var doc archivedSubmission
	if err := yaml.Unmarshal(data, &doc); err != nil {
		a.opts.Logger.WithFields(map[string]any{"document": docs[len(docs)-1]}).Warn("previous submission unreadable")
		return "", false
	}
	out, err := yaml.Marshal(doc.Request)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func (a *ArchiveSubmitter) openOrInit() (*git.Repository, error) {
	repo, err := git.PlainOpen(a.opts.Dir)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("open archive repository: %w", err)
	}

	if err := os.MkdirAll(a.opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	repo, err = git.PlainInit(a.opts.Dir, false)
	if err != nil {
		return nil, fmt.Errorf("init archive repository: %w", err)
	}
	return repo, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create image copy: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy image: %w", err)
	}
	return out.Close()
}
