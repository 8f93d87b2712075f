package foundations

import "fmt"

// Behaviour describes how an element interacts with its neighbours in a
// realized content stream. It is reported per instance, not per kind: the
// same kind may be weak or destructive depending on its fields.
type Behaviour struct {
	mode  behaviourMode
	level int // weakness level, meaningful for weak only
}

type behaviourMode int

const (
	modeSupportive behaviourMode = iota
	modeWeak
	modeDestructive
	modeIgnorant
	modeInvisible
)

// Supportive elements enable adjacent weak elements to exist. This is the
// default for kinds that do not report a behaviour at all.
var Supportive = Behaviour{mode: modeSupportive}

// Destructive elements destroy adjacent weak elements.
var Destructive = Behaviour{mode: modeDestructive}

// Ignorant elements do not take part in the weak/destructive accounting,
// as if they were absent, but keep their visual representation.
var Ignorant = Behaviour{mode: modeIgnorant}

// Invisible elements are likewise transparent to the accounting and
// additionally have no visual representation.
var Invisible = Behaviour{mode: modeInvisible}

// Weak returns the behaviour of a weak element with the given weakness
// level. Within one consecutive run of weak elements only one survives:
// the one with the numerically lowest level.
func Weak(level int) Behaviour {
	return Behaviour{mode: modeWeak, level: level}
}

// IsWeak reports whether the behaviour is weak.
func (b Behaviour) IsWeak() bool {
	return b.mode == modeWeak
}

// Level returns the weakness level. It is zero for non-weak behaviours.
func (b Behaviour) Level() int {
	return b.level
}

// Transparent reports whether the behaviour is skipped entirely by the
// weak/destructive accounting.
func (b Behaviour) Transparent() bool {
	return b.mode == modeIgnorant || b.mode == modeInvisible
}

// String implements fmt.Stringer.
func (b Behaviour) String() string {
	switch b.mode {
	case modeWeak:
		return fmt.Sprintf("weak(%d)", b.level)
	case modeSupportive:
		return "supportive"
	case modeDestructive:
		return "destructive"
	case modeIgnorant:
		return "ignorant"
	case modeInvisible:
		return "invisible"
	default:
		return "unknown"
	}
}

// Behave is the capability through which an instance reports its
// interaction behaviour.
type Behave interface {
	// Behaviour returns the instance's interaction behaviour.
	Behaviour() Behaviour
}

// Tiebreaker is implemented by weak elements that opt into replacing an
// equally weak element retained earlier in the same run. Without it, the
// first element seen in the run wins level ties.
type Tiebreaker interface {
	// Larger reports whether the receiver should replace prev, the weak
	// element currently retained in the run, when both have the same
	// weakness level.
	Larger(prev Content, styles StyleChain) bool
}

// BehaviourOf returns the behaviour an instance reports through the Behave
// capability, or Supportive if the kind does not implement it.
func BehaviourOf(c Content) Behaviour {
	if b, ok := To[Behave](c); ok {
		return b.Behaviour()
	}
	return Supportive
}
