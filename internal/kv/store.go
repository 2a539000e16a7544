// Package kv is the persistence boundary: a string-keyed store of serialized
// JSON blobs that survives across sessions on one device.
package kv

const (
	// KeyIdentity holds the JSON-serialized active identity.
	KeyIdentity = "hopebridge.identity"
	// KeyNeeds holds the JSON-serialized user-created needs (id > 4 only).
	KeyNeeds = "hopebridge.needs"
)

type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Remove is a no-op for absent keys.
	Remove(key string) error
}
