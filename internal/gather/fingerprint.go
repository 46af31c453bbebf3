package gather

import (
	"encoding/hex"
	"encoding/json"

	"github.com/zeebo/blake3"

	"github.com/AndreyAkinshin/testgate/internal/testrun"
)

// Fingerprint returns the hex BLAKE3 digest of the canonical JSON encoding of
// results. Identical result sets in the same order share a fingerprint.
func Fingerprint(results []testrun.Result) (string, error) {
	h := blake3.New()
	enc := json.NewEncoder(h)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
