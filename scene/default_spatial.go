//go:build tagaro_spatial

package scene

// DefaultBackend is the backend New opens. The spatial backend must be
// registered by the program before New is called.
const DefaultBackend = "spatial"
