package scene

import (
	"tagaro/internal/once"
	"tagaro/log"
)

const NullName = "null"

const (
	featureListenerPos = "listener_pos"
	featureVolume      = "volume"
)

// Null is the scene backend for builds without spatial audio support. It
// reports a listener fixed at Origin and full volume, and warns once per
// feature when a caller tries to change either.
type Null struct {
	warn   func(feature, msg string)
	warned once.Warner
}

type NullOption func(*Null)

// WithWarner replaces the diagnostic sink. The default writes a structured
// warning through the log package. fn may call back into the backend.
func WithWarner(fn func(feature, msg string)) NullOption {
	return func(n *Null) { n.warn = fn }
}

func NewNull(opts ...NullOption) *Null {
	n := &Null{
		warn: func(feature, msg string) { log.Unsupported(NullName, feature, msg) },
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Null) Name() string { return NullName }

func (n *Null) ListenerPos() Point { return Origin }

func (n *Null) SetListenerPos(Point) {
	n.unsupported(featureListenerPos, "listener position is not supported by the null audio backend")
}

func (n *Null) Volume() float64 { return 1 }

func (n *Null) SetVolume(float64) {
	n.unsupported(featureVolume, "volume control is not supported by the null audio backend")
}

func (n *Null) unsupported(feature, msg string) {
	n.warned.Do(feature, func() {
		if n.warn != nil {
			n.warn(feature, msg)
		}
	})
}
