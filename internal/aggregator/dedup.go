package aggregator

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// DedupHash computes the merge key for a posting: sha256 over the
// normalized title, company and location. Two boards listing the same
// role at the same company in the same place collapse to one row.
func DedupHash(title, company, location string) string {
	key := normalizeField(title) + "|" + normalizeField(company) + "|" + normalizeField(location)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func normalizeField(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
