package scene

// NullBackend is the former name of Null.
//
// Deprecated: use Null.
type NullBackend = Null

// ListenerPosition returns s.ListenerPos().
//
// Deprecated: call Scene.ListenerPos directly.
func ListenerPosition(s Scene) Point {
	return s.ListenerPos()
}

// SetListenerPosition calls s.SetListenerPos(p).
//
// Deprecated: call Scene.SetListenerPos directly.
func SetListenerPosition(s Scene, p Point) {
	s.SetListenerPos(p)
}
