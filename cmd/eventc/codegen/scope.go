package codegen

// Scope tracks, for one event nesting level, which object lists the code
// generated inside the event needs and how they must be declared: "with
// picking" (a filtered copy of the runtime's live object set), "without
// picking" (declared empty, filled later), or "empty".
//
// A scope holds a non-owning reference to its parent, valid only for the
// parent event's activation: a child scope must never outlive the recursive
// call that created its parent.
type Scope struct {
	parent *Scope
	depth  int

	// reused marks a scope that aliases its parent's object lists instead
	// of copying them (the last-sibling optimization).
	reused bool

	// reuseAllowed marks a scope whose children may alias its lists.
	reuseAllowed bool

	// currentObject is set while iterating the expansion of a per-object
	// instruction, so nested expansions collapse to that one object.
	currentObject string

	customConditionDepth int

	needed               *nameSet
	neededWithoutPicking *nameSet
	neededEmpty          *nameSet

	// declared records names already declared by this scope or an
	// ancestor. Inherited as knowledge (a copy), not as shared state.
	declared map[string]struct{}
}

// NewScope returns a root scope with no parent.
func NewScope() *Scope {
	return &Scope{
		needed:               newNameSet(),
		neededWithoutPicking: newNameSet(),
		neededEmpty:          newNameSet(),
		declared:             make(map[string]struct{}),
	}
}

// InheritsFrom makes s a child of parent: it keeps a reference to parent
// and copies parent's declaration knowledge (everything parent has declared
// or will declare for its own needs) so redundant re-declarations are
// avoided.
func (s *Scope) InheritsFrom(parent *Scope) {
	s.parent = parent
	s.depth = parent.depth + 1
	s.customConditionDepth = parent.customConditionDepth

	s.declared = make(map[string]struct{}, len(parent.declared))
	for name := range parent.declared {
		s.declared[name] = struct{}{}
	}
	for _, name := range parent.needed.names {
		s.declared[name] = struct{}{}
	}
	for _, name := range parent.neededWithoutPicking.names {
		s.declared[name] = struct{}{}
	}
	for _, name := range parent.neededEmpty.names {
		s.declared[name] = struct{}{}
	}
}

// Reuse is InheritsFrom plus aliasing: the scope uses the parent's object
// lists directly rather than copying them. Only valid when the parent
// allowed reuse and the owning event is the last of its sibling list, as
// the parent's lists are discarded right after.
func (s *Scope) Reuse(parent *Scope) {
	s.InheritsFrom(parent)
	s.reused = true
}

// AllowReuse marks the scope's object lists as reusable by a child scope.
func (s *Scope) AllowReuse() { s.reuseAllowed = true }

// CanReuse reports whether a child scope may alias this scope's lists.
func (s *Scope) CanReuse() bool { return s.reuseAllowed }

// Parent returns the parent scope, or nil for a root scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Depth returns the event nesting depth (0 for a root scope).
func (s *Scope) Depth() int { return s.depth }

// SetCurrentObject records the object being iterated by a per-object
// instruction.
func (s *Scope) SetCurrentObject(name string) { s.currentObject = name }

// SetNoCurrentObject clears the iterated object.
func (s *Scope) SetNoCurrentObject() { s.currentObject = "" }

// CurrentObject returns the object being iterated, or "".
func (s *Scope) CurrentObject() string { return s.currentObject }

// EnterCustomCondition increments the nested custom-condition depth.
func (s *Scope) EnterCustomCondition() { s.customConditionDepth++ }

// LeaveCustomCondition decrements the nested custom-condition depth.
func (s *Scope) LeaveCustomCondition() { s.customConditionDepth-- }

// CurrentConditionDepth returns the nested custom-condition depth.
func (s *Scope) CurrentConditionDepth() int { return s.customConditionDepth }

// ObjectsListNeeded records that the generated code needs the object's
// list, declared with picking. A name already recorded in any of the three
// sets keeps its first classification.
func (s *Scope) ObjectsListNeeded(name string) {
	if !s.isNeeded(name) {
		s.needed.add(name)
	}
}

// ObjectsListWithoutPickingNeeded records that the generated code needs the
// object's list declared without picking (empty, filled later).
func (s *Scope) ObjectsListWithoutPickingNeeded(name string) {
	if !s.isNeeded(name) {
		s.neededWithoutPicking.add(name)
	}
}

// EmptyObjectsListNeeded records that the generated code needs an empty
// list for the object, unrelated to any picking done by ancestors.
func (s *Scope) EmptyObjectsListNeeded(name string) {
	if !s.isNeeded(name) {
		s.neededEmpty.add(name)
	}
}

func (s *Scope) isNeeded(name string) bool {
	return s.needed.has(name) || s.neededWithoutPicking.has(name) || s.neededEmpty.has(name)
}

// ObjectsListsToDeclare returns the names needing a picked declaration, in
// the order they were first needed.
func (s *Scope) ObjectsListsToDeclare() []string { return s.needed.names }

// ObjectsListsToDeclareWithoutPicking returns the names needing an unpicked
// declaration.
func (s *Scope) ObjectsListsToDeclareWithoutPicking() []string {
	return s.neededWithoutPicking.names
}

// ObjectsListsToDeclareEmpty returns the names needing an empty
// declaration.
func (s *Scope) ObjectsListsToDeclareEmpty() []string { return s.neededEmpty.names }

// ObjectAlreadyDeclared reports whether the object's list was declared by
// this scope or an ancestor.
func (s *Scope) ObjectAlreadyDeclared(name string) bool {
	_, ok := s.declared[name]
	return ok
}

// SetObjectDeclared records the object's list as declared in this scope.
func (s *Scope) SetObjectDeclared(name string) {
	s.declared[name] = struct{}{}
}

// IsSameObjectsList reports whether this scope's list for the object is the
// identical list as the other scope's — true only when this scope aliases
// its parent through Reuse.
func (s *Scope) IsSameObjectsList(name string, other *Scope) bool {
	return s.reused && s.parent == other
}

// nameSet is an insertion-ordered string set. Declaration order must match
// the order lists were first needed, as it is observable in the output.
type nameSet struct {
	names []string
	index map[string]struct{}
}

func newNameSet() *nameSet {
	return &nameSet{index: make(map[string]struct{})}
}

func (ns *nameSet) add(name string) {
	if _, ok := ns.index[name]; ok {
		return
	}
	ns.index[name] = struct{}{}
	ns.names = append(ns.names, name)
}

func (ns *nameSet) has(name string) bool {
	_, ok := ns.index[name]
	return ok
}
