package feature

import (
	"fmt"

	"github.com/featkit/featkit/core"
)

// OneHot returns the unit vector of length size with a 1 at index and 0
// elsewhere.
func OneHot(index, size int) ([]float64, error) {
	if size < 1 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
			fmt.Sprintf("one-hot: size must be >= 1, got %d", size))
	}
	if index < 0 || index >= size {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
			fmt.Sprintf("one-hot: index %d out of range [0, %d)", index, size))
	}
	vec := make([]float64, size)
	vec[index] = 1
	return vec, nil
}

// ActiveIndex returns the index of the single non-zero entry of a strictly
// one-hot vector. It reports INVALID_ARGUMENT when the vector is empty, has
// no active entry, or has more than one.
func ActiveIndex(vec []float64) (int, error) {
	if len(vec) == 0 {
		return 0, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
			"active index: empty vector")
	}
	active := -1
	for i, v := range vec {
		if v == 0 {
			continue
		}
		if active >= 0 {
			return 0, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
				fmt.Sprintf("active index: vector is not one-hot (non-zero at %d and %d)", active, i))
		}
		active = i
	}
	if active < 0 {
		return 0, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
			"active index: vector has no non-zero entry")
	}
	return active, nil
}

// Vocabulary maps category strings to stable, ordered indexes. Unknown
// categories are reported instead of being silently mapped to a default.
type Vocabulary struct {
	categories []string
	index      map[string]int
}

// NewVocabulary creates a vocabulary from an ordered, duplicate-free
// category list.
func NewVocabulary(categories ...string) (*Vocabulary, error) {
	if len(categories) == 0 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
			"vocabulary: at least one category is required")
	}
	idx := make(map[string]int, len(categories))
	for i, cat := range categories {
		if _, ok := idx[cat]; ok {
			return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
				fmt.Sprintf("vocabulary: duplicate category %q", cat))
		}
		idx[cat] = i
	}
	own := make([]string, len(categories))
	copy(own, categories)
	return &Vocabulary{categories: own, index: idx}, nil
}

// Size returns the number of categories K.
func (v *Vocabulary) Size() int { return len(v.categories) }

// Categories returns the ordered category list.
func (v *Vocabulary) Categories() []string {
	out := make([]string, len(v.categories))
	copy(out, v.categories)
	return out
}

// IndexOf returns the index of category, if known.
func (v *Vocabulary) IndexOf(category string) (int, bool) {
	i, ok := v.index[category]
	return i, ok
}

// Encode returns the one-hot vector for category, or NOT_FOUND if the
// category is not in the vocabulary.
func (v *Vocabulary) Encode(category string) ([]float64, error) {
	i, ok := v.index[category]
	if !ok {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeNotFound,
			fmt.Sprintf("vocabulary: unknown category %q", category))
	}
	return OneHot(i, len(v.categories))
}
