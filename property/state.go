package property

// State is the tuple of property nodes a paint chunk is painted under.
// States compare with ==: two states are equal when they reference the
// same nodes.
type State struct {
	Transform *TransformNode
	Clip      *ClipNode
	Effect    *EffectNode
	Scroll    *ScrollNode
}

// RootState returns the state made of every tree's root.
func RootState() State {
	return State{
		Transform: rootTransform,
		Clip:      rootClip,
		Effect:    rootEffect,
		Scroll:    rootScroll,
	}
}

// Normalize replaces nil nodes by the roots.
func (s State) Normalize() State {
	if s.Transform == nil {
		s.Transform = rootTransform
	}
	if s.Clip == nil {
		s.Clip = rootClip
	}
	if s.Effect == nil {
		s.Effect = rootEffect
	}
	if s.Scroll == nil {
		s.Scroll = rootScroll
	}
	return s
}

// IsRoot reports whether s only references roots.
func (s State) IsRoot() bool {
	return s.Normalize() == RootState()
}
