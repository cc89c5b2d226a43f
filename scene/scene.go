// Package scene defines the audio scene capability used by games: a listener
// placed on a 2D plane and a master volume. Backends that cannot drive a
// spatial audio engine still satisfy the interface so callers never need
// conditional code around scene updates.
package scene

// Point is a position on the scene plane.
type Point struct {
	X, Y float64
}

// Origin is where the listener sits when a backend cannot move it.
var Origin = Point{}

// Scene is implemented by every audio scene backend. Methods never fail;
// a backend that cannot honor a setter ignores it.
type Scene interface {
	Name() string
	ListenerPos() Point
	SetListenerPos(p Point)
	Volume() float64
	SetVolume(v float64)
}
