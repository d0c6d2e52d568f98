package svmlight

import "fmt"

// ErrFeatureCountTooSmall indicates that a pinned feature count (see
// WithNumFeatures) is smaller than what the loaded file actually requires.
// The format itself does not forbid such files, so the core parser accepts
// them; the mismatch is rejected here, once the maximum observed column
// index is known.
type ErrFeatureCountTooSmall struct {
	Pinned   uint64
	Required uint64
}

func (e *ErrFeatureCountTooSmall) Error() string {
	return fmt.Sprintf("svmlight: feature count %d too small: file requires at least %d", e.Pinned, e.Required)
}
