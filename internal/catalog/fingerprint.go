package catalog

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// domainFunctions separates listing fingerprints from any other hash
// the catalog may store. The version suffix allows changing the encoding.
const domainFunctions = "sqlfn/functions/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint returns the content hash of a listing. Two exports of the
// same rows in the same order share a fingerprint regardless of source.
func Fingerprint(rows []FunctionRow) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return "", fmt.Errorf("fingerprint: encode %s: %w", r.Name, err)
		}
	}
	return hashWithDomain(domainFunctions, buf.Bytes()), nil
}
