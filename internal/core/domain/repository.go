package domain

import "fmt"

// Repository identifies the storage scope for a DAK: one branch of one
// version-controlled repository. All storage operations are addressed
// by (Owner, Repo, Branch, path).
type Repository struct {
	// Owner is the user or organisation that owns the repository.
	Owner string

	// Repo is the repository name.
	Repo string

	// Branch is the working branch holding the uncommitted staging area.
	Branch string
}

// String returns the repository in "owner/repo@branch" form.
func (r Repository) String() string {
	return fmt.Sprintf("%s/%s@%s", r.Owner, r.Repo, r.Branch)
}

// Validate checks that all three coordinates are present.
func (r Repository) Validate() error {
	if r.Owner == "" || r.Repo == "" || r.Branch == "" {
		return fmt.Errorf("%w: repository requires owner, repo and branch", ErrInvalidInput)
	}
	return nil
}
