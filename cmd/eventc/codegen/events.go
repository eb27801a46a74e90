package codegen

// Event is one node of the behavior tree. The set of implementations is
// closed: StandardEvent, GroupEvent and CommentEvent.
//
// GenerateCode is a double-dispatch boundary: the tree walk hands control
// to the event, which calls back into the generator's public instruction
// and list compilation entry points to render its own conditions, actions
// and sub-events.
type Event interface {
	GenerateCode(gen *Generator, scope *Scope) string

	// Executable reports whether the event produces code at all.
	// Non-executable events are pruned before generation.
	Executable() bool

	// IsDisabled reports whether the author switched the event off.
	IsDisabled() bool
}

// Preprocessable is implemented by events that need a preprocessing pass
// before generation (e.g. to resolve links into their target events).
type Preprocessable interface {
	Preprocess(gen *Generator, events []Event, index int)
}

// StandardEvent holds ordered conditions and actions plus optional
// sub-events. Actions run only when every condition evaluated true;
// sub-events are generated inside that same guard so they see the objects
// picked by the conditions.
type StandardEvent struct {
	Conditions []Instruction
	Actions    []Instruction
	Sub        []Event
	Disabled   bool
}

func (e *StandardEvent) Executable() bool { return true }

func (e *StandardEvent) IsDisabled() bool { return e.Disabled }

func (e *StandardEvent) GenerateCode(gen *Generator, scope *Scope) string {
	outputCode := gen.GenerateConditionsListCode(e.Conditions, scope)

	actionsCode := gen.GenerateActionsListCode(e.Actions, scope)
	if len(e.Sub) > 0 {
		// The event's own lists die with it, so the last sub-event may
		// alias them instead of copying.
		scope.AllowReuse()
		actionsCode += "\n{ //Subevents\n" +
			gen.GenerateEventsListCode(e.Sub, scope) +
			"} //End of subevents\n"
	}

	if len(e.Conditions) == 0 {
		return outputCode + actionsCode
	}
	guard := conditionFlagName(len(e.Conditions) - 1)
	return outputCode + "if (" + guard + ")\n{\n" + actionsCode + "}\n"
}

// GroupEvent is a folder: it only generates its children, sharing the
// surrounding scope.
type GroupEvent struct {
	Name     string
	Sub      []Event
	Disabled bool
}

func (e *GroupEvent) Executable() bool { return true }

func (e *GroupEvent) IsDisabled() bool { return e.Disabled }

func (e *GroupEvent) GenerateCode(gen *Generator, scope *Scope) string {
	return gen.GenerateEventsListCode(e.Sub, scope)
}

// CommentEvent is authoring-time documentation. It is not executable and
// is pruned before generation; generating it anyway yields an inert
// comment.
type CommentEvent struct {
	Text     string
	Disabled bool
}

func (e *CommentEvent) Executable() bool { return false }

func (e *CommentEvent) IsDisabled() bool { return e.Disabled }

func (e *CommentEvent) GenerateCode(gen *Generator, scope *Scope) string {
	return "/* " + e.Text + " */\n"
}

// PruneDisabledEvents returns the events worth generating: disabled and
// non-executable events are dropped, sub-events first so a kept event only
// carries kept children.
func PruneDisabledEvents(events []Event) []Event {
	kept := make([]Event, 0, len(events))
	for _, event := range events {
		switch e := event.(type) {
		case *StandardEvent:
			e.Sub = PruneDisabledEvents(e.Sub)
		case *GroupEvent:
			e.Sub = PruneDisabledEvents(e.Sub)
		}
		if !event.Executable() || event.IsDisabled() {
			continue
		}
		kept = append(kept, event)
	}
	return kept
}

// PreprocessEvents runs the preprocessing hook of every event that has
// one, depth-first.
func PreprocessEvents(gen *Generator, events []Event) {
	for i, event := range events {
		if p, ok := event.(Preprocessable); ok {
			p.Preprocess(gen, events, i)
		}
		switch e := event.(type) {
		case *StandardEvent:
			PreprocessEvents(gen, e.Sub)
		case *GroupEvent:
			PreprocessEvents(gen, e.Sub)
		}
	}
}
