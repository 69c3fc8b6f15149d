package anim

import "fmt"

// ConfigError reports an invalid widget construction, such as an empty child
// list or a negative repeat count. Constructors fail fast with one of these
// rather than producing a widget with undefined behavior.
type ConfigError struct {
	Widget string // constructor that rejected its input
	Reason string // violated precondition
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("anim: %s: %s", e.Widget, e.Reason)
}

// SequenceError reports a lifecycle violation: a widget was ticked after it
// had already reported done, with no reset in between. Only the Checked
// guard raises it; the combinators themselves keep extra ticks harmless so
// that containers may tick completed children.
type SequenceError struct {
	Widget string
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("anim: %s ticked after done without reset", e.Widget)
}
