package codegen

// Instruction is a single condition or action of an event: a metadata type
// key plus its raw textual parameters.
//
// Parameters are raw tokens as authored in the sheet; they are only turned
// into target-language code during generation. Instructions saved by older
// tool versions may carry fewer parameters than their metadata declares —
// the generator pads them with empty tokens before compiling.
type Instruction struct {
	Type       string
	Parameters []string

	// SubInstructions holds nested conditions, used by instructions whose
	// metadata declares a custom code generator (e.g. "or"/"and" blocks).
	SubInstructions []Instruction

	// Inverted is only meaningful for conditions.
	Inverted bool

	// UID is a stable identity assigned when the instruction is inserted
	// into the sheet (its arena index). Regenerating code for the same
	// unchanged sheet therefore yields the same unique ids.
	UID int
}

// Object is a named entity of the project or of one scene.
// Behaviors maps an attached behavior's name to its behavior type.
type Object struct {
	Name      string
	Type      string
	Behaviors map[string]string
}

// ObjectGroup is a named, ordered set of object names.
type ObjectGroup struct {
	Name    string
	Members []string
}

// ObjectsContainer is a name-keyed registry of objects and object groups,
// consulted read-only during generation. Two containers exist per run: the
// project-wide (global) one and the scene-local one.
//
// Objects are stored in an arena (insertion-ordered slice) and addressed by
// index through the name lookup map.
type ObjectsContainer struct {
	objects     []Object
	byName      map[string]int
	groups      []ObjectGroup
	groupByName map[string]int
}

// NewObjectsContainer returns an empty container.
func NewObjectsContainer() *ObjectsContainer {
	return &ObjectsContainer{
		byName:      make(map[string]int),
		groupByName: make(map[string]int),
	}
}

// InsertObject adds an object. A later insert with the same name replaces
// the earlier definition.
func (c *ObjectsContainer) InsertObject(o Object) {
	if i, ok := c.byName[o.Name]; ok {
		c.objects[i] = o
		return
	}
	c.byName[o.Name] = len(c.objects)
	c.objects = append(c.objects, o)
}

// InsertGroup adds a group. A later insert with the same name replaces the
// earlier definition.
func (c *ObjectsContainer) InsertGroup(g ObjectGroup) {
	if i, ok := c.groupByName[g.Name]; ok {
		c.groups[i] = g
		return
	}
	c.groupByName[g.Name] = len(c.groups)
	c.groups = append(c.groups, g)
}

// HasObjectNamed reports whether an object with that name exists.
func (c *ObjectsContainer) HasObjectNamed(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// GetObject returns the object with that name.
func (c *ObjectsContainer) GetObject(name string) (Object, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Object{}, false
	}
	return c.objects[i], true
}

// HasGroupNamed reports whether a group with that name exists.
func (c *ObjectsContainer) HasGroupNamed(name string) bool {
	_, ok := c.groupByName[name]
	return ok
}

// GetGroup returns the group with that name.
func (c *ObjectsContainer) GetGroup(name string) (ObjectGroup, bool) {
	i, ok := c.groupByName[name]
	if !ok {
		return ObjectGroup{}, false
	}
	return c.groups[i], true
}

// Objects returns all objects in insertion order.
func (c *ObjectsContainer) Objects() []Object {
	return c.objects
}
