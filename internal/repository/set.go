package repository

import (
	"os"

	"github.com/pkg/errors"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

var ErrEmptySet = errors.New("set must have at least 1 card to learn")

// SetRepository loads flashcard sets from the filesystem.
type SetRepository struct{}

// NewSetRepository creates a new SetRepository.
func NewSetRepository() *SetRepository {
	return &SetRepository{}
}

// Load reads and parses the set at path. A returned ParseError can be unwrapped
// with errors.As to inspect individual block errors.
func (r *SetRepository) Load(path string) (*entities.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open set")
	}

	set, err := ParseSet(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse set %s", path)
	}

	return set, nil
}

// LoadStudyable loads the set at path and refuses sets with nothing to study.
func (r *SetRepository) LoadStudyable(path string) (*entities.Set, error) {
	set, err := r.Load(path)
	if err != nil {
		return nil, err
	}

	if len(set.Cards) == 0 || !(set.RecallT.IsUsed() || set.RecallD.IsUsed()) {
		return nil, ErrEmptySet
	}

	return set, nil
}
