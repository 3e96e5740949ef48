package utils

// Label is a traceable annotation attached to records and runs: which stage
// touched a row, why a row was filtered, where a lookup was served from.
// Value and Source semantics belong to the caller; only the merge rule is
// standardized here.
type Label struct {
	Value  string `json:"value"`
	Source string `json:"source"` // load / transform / filter / repository ...
}

// MergeLabel merges two same-key labels, keeping history:
//   - Value accumulates with '|'
//   - Source accumulates with ','
func MergeLabel(existing Label, incoming Label) Label {
	if existing.Value == "" {
		return incoming
	}
	if incoming.Value == "" {
		return existing
	}

	merged := existing
	merged.Value = existing.Value + "|" + incoming.Value
	switch {
	case existing.Source == "":
		merged.Source = incoming.Source
	case incoming.Source == "":
		merged.Source = existing.Source
	default:
		merged.Source = existing.Source + "," + incoming.Source
	}
	return merged
}
