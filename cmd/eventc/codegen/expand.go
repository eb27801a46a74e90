package codegen

// ExpandObjectsName expands an object parameter into the concrete object
// names it designates: group members when the name is a group (scene groups
// take precedence over global ones), the name itself otherwise.
//
// When the scope is iterating a specific object and that object is part of
// the expansion, the expansion collapses to exactly that object: once a
// per-object instruction picked an object, nested instructions operate on
// it alone rather than re-expanding the whole group.
//
// Names that no longer exist in the scene or global containers are dropped
// silently, defending against stale group membership.
func (g *Generator) ExpandObjectsName(objectName string, scope *Scope) []string {
	var realObjects []string
	if group, ok := g.sceneObjects.GetGroup(objectName); ok {
		realObjects = append(realObjects, group.Members...)
	} else if group, ok := g.globalObjects.GetGroup(objectName); ok {
		realObjects = append(realObjects, group.Members...)
	} else {
		realObjects = []string{objectName}
	}

	if current := scope.CurrentObject(); current != "" {
		for _, name := range realObjects {
			if name == current {
				realObjects = []string{current}
				break
			}
		}
	}

	existing := realObjects[:0]
	for _, name := range realObjects {
		if g.sceneObjects.HasObjectNamed(name) || g.globalObjects.HasObjectNamed(name) {
			existing = append(existing, name)
		}
	}
	return existing
}

// hasObjectOrGroup reports whether the name designates a known object or
// group in scene or global scope.
func (g *Generator) hasObjectOrGroup(name string) bool {
	return g.sceneObjects.HasObjectNamed(name) ||
		g.globalObjects.HasObjectNamed(name) ||
		g.sceneObjects.HasGroupNamed(name) ||
		g.globalObjects.HasGroupNamed(name)
}

// TypeOfObject resolves an object name to its declared type, scene objects
// first. A group resolves to its members' common type, or to the base type
// "" when members disagree, the name is unknown, or group membership is
// cyclic.
func (g *Generator) TypeOfObject(name string) string {
	return g.typeOfObject(name, make(map[string]struct{}))
}

func (g *Generator) typeOfObject(name string, visiting map[string]struct{}) string {
	if obj, ok := g.sceneObjects.GetObject(name); ok {
		return obj.Type
	}
	if obj, ok := g.globalObjects.GetObject(name); ok {
		return obj.Type
	}

	if _, ok := visiting[name]; ok {
		return ""
	}
	visiting[name] = struct{}{}
	defer delete(visiting, name)

	group, ok := g.sceneObjects.GetGroup(name)
	if !ok {
		group, ok = g.globalObjects.GetGroup(name)
	}
	if !ok || len(group.Members) == 0 {
		return ""
	}
	common := g.typeOfObject(group.Members[0], visiting)
	for _, member := range group.Members[1:] {
		if g.typeOfObject(member, visiting) != common {
			return ""
		}
	}
	return common
}

// TypeOfBehavior resolves a behavior name to its behavior type by scanning
// the objects it is attached to, scene objects first. Unknown behavior
// names resolve to "".
func (g *Generator) TypeOfBehavior(name string) string {
	for _, container := range []*ObjectsContainer{g.sceneObjects, g.globalObjects} {
		for _, obj := range container.Objects() {
			if behaviorType, ok := obj.Behaviors[name]; ok {
				return behaviorType
			}
		}
	}
	return ""
}
