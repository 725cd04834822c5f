package rip

import "github.com/google/uuid"

// newRunID is a package-level indirection over uuid.NewString, following
// the teacher's AssetId-from-uuid pattern (mod_assets.go's makeAssetId).
// Tests may override it to get a deterministic run id.
var newRunID = func() string {
	return uuid.NewString()
}
