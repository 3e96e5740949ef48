package core

import (
	"fmt"

	"github.com/featkit/featkit/pkg/utils"
)

// Record is the unit flowing through a pipeline: one row of a dataset with
// its raw fields, numeric features and provenance labels.
//
// Fields holds parsed raw values (string, float64, ...). Features holds the
// numeric view the transform stages read and write. Ordered vector columns
// (one-hot encodings, crossed features) are stored as indexed feature keys
// "name_0".."name_{K-1}" and reconstructed with FeatureVector.
type Record struct {
	ID       int64
	Fields   map[string]any
	Features map[string]float64
	Labels   map[string]utils.Label
}

func NewRecord(id int64) *Record {
	return &Record{
		ID:       id,
		Fields:   make(map[string]any),
		Features: make(map[string]float64),
		Labels:   make(map[string]utils.Label),
	}
}

// PutLabel writes a provenance label; same-key labels merge cumulatively.
func (r *Record) PutLabel(key string, lbl utils.Label) {
	if r.Labels == nil {
		r.Labels = make(map[string]utils.Label)
	}
	if old, ok := r.Labels[key]; ok {
		r.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	r.Labels[key] = lbl
}

// SetFeatureVector stores an ordered vector under indexed keys name_0..name_{len-1}.
func (r *Record) SetFeatureVector(name string, vec []float64) {
	if r.Features == nil {
		r.Features = make(map[string]float64, len(vec))
	}
	for i, v := range vec {
		r.Features[fmt.Sprintf("%s_%d", name, i)] = v
	}
}

// FeatureVector reconstructs the ordered vector stored under name_0..name_{size-1}.
// Returns NOT_FOUND if any indexed column is missing, so a partially written
// vector is never silently read back with zero gaps.
func (r *Record) FeatureVector(name string, size int) ([]float64, error) {
	if size < 1 {
		return nil, NewDomainError(ModuleFeature, ErrorCodeInvalidArgument,
			fmt.Sprintf("feature vector %q: size must be >= 1, got %d", name, size))
	}
	vec := make([]float64, size)
	for i := range vec {
		key := fmt.Sprintf("%s_%d", name, i)
		v, ok := r.Features[key]
		if !ok {
			return nil, NewDomainError(ModuleFeature, ErrorCodeNotFound,
				fmt.Sprintf("feature column %q not found on record %d", key, r.ID))
		}
		vec[i] = v
	}
	return vec, nil
}

// DropFeatureVector removes the indexed columns name_0..name_{size-1}.
func (r *Record) DropFeatureVector(name string, size int) {
	for i := 0; i < size; i++ {
		delete(r.Features, fmt.Sprintf("%s_%d", name, i))
	}
}
