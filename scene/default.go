//go:build !tagaro_spatial

package scene

// DefaultBackend is the backend New opens. Builds tagged tagaro_spatial
// select the spatial backend instead.
const DefaultBackend = NullName
