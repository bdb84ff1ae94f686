package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainInput      = "f2c/input/v1"
	DomainDocument   = "f2c/document/v1"
	DomainSerialized = "f2c/serialized/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ContentHash hashes the canonical JSON form of v under the given domain.
func ContentHash(domain string, v any) (string, error) {
	canonical, err := MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("ContentHash: failed to marshal: %w", err)
	}
	return hashWithDomain(domain, canonical), nil
}

// InputKey identifies one conversion: the raw external tree together with
// every option that influences the output. Two conversions with the same key
// produce byte-identical serialized documents.
func InputKey(raw any, scaleFactor float64, maxDepth int) (string, error) {
	obj := map[string]any{
		"input":        raw,
		"scale_factor": scaleFactor,
		"max_depth":    maxDepth,
		"ir_version":   Version,
	}
	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("InputKey: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainInput, canonical), nil
}

// DocumentHash computes the content hash of an IR document.
func DocumentHash(doc *Document) (string, error) {
	return ContentHash(DomainDocument, doc)
}

// SerializedHash computes the content hash of a serialized document.
func SerializedHash(doc *SerializedDocument) (string, error) {
	return ContentHash(DomainSerialized, doc)
}

// MustInputKey is like InputKey but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustInputKey(raw any, scaleFactor float64, maxDepth int) string {
	key, err := InputKey(raw, scaleFactor, maxDepth)
	if err != nil {
		panic(err)
	}
	return key
}
