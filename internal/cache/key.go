package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/aleister1102/revisiondiff/internal/models"
)

// Key derives the deterministic cache key for a revision pair and options.
// The pair is ordered min/max so comparing (a,b) and (b,a) share an entry;
// the options hash is taken over the normalized options' canonical JSON.
func Key(idA, idB int64, opts models.CompareOptions) string {
	low, high := idA, idB
	if low > high {
		low, high = high, low
	}
	return fmt.Sprintf("diff:%d:%d:%s", low, high, optionsHash(opts.Normalized()))
}

func optionsHash(opts models.CompareOptions) string {
	encoded, err := json.Marshal(opts)
	if err != nil {
		// CompareOptions only carries scalars; Marshal cannot fail on it.
		return "invalid"
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:])
}
