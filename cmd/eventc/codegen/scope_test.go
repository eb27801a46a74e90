package codegen

import (
	"reflect"
	"testing"
)

func TestScope_NeededListsKeepFirstClassification(t *testing.T) {
	s := NewScope()
	s.ObjectsListNeeded("A")
	s.EmptyObjectsListNeeded("A")
	s.ObjectsListWithoutPickingNeeded("A")
	s.ObjectsListWithoutPickingNeeded("B")
	s.ObjectsListNeeded("B")

	if got := s.ObjectsListsToDeclare(); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("picked lists = %v", got)
	}
	if got := s.ObjectsListsToDeclareWithoutPicking(); !reflect.DeepEqual(got, []string{"B"}) {
		t.Fatalf("without-picking lists = %v", got)
	}
	if got := s.ObjectsListsToDeclareEmpty(); len(got) != 0 {
		t.Fatalf("empty lists = %v", got)
	}
}

func TestScope_NeededListsPreserveInsertionOrder(t *testing.T) {
	s := NewScope()
	for _, name := range []string{"C", "A", "B", "A"} {
		s.ObjectsListNeeded(name)
	}
	if got := s.ObjectsListsToDeclare(); !reflect.DeepEqual(got, []string{"C", "A", "B"}) {
		t.Fatalf("got %v", got)
	}
}

func TestScope_InheritsFrom(t *testing.T) {
	parent := NewScope()
	parent.SetObjectDeclared("Old")
	parent.ObjectsListNeeded("Picked")
	parent.ObjectsListWithoutPickingNeeded("Unpicked")
	parent.EmptyObjectsListNeeded("Empty")
	parent.EnterCustomCondition()

	child := NewScope()
	child.InheritsFrom(parent)

	if child.Parent() != parent {
		t.Fatal("expected the child to reference its parent")
	}
	if child.Depth() != 1 {
		t.Fatalf("depth = %d", child.Depth())
	}
	if child.CurrentConditionDepth() != 1 {
		t.Fatalf("custom condition depth = %d", child.CurrentConditionDepth())
	}
	for _, name := range []string{"Old", "Picked", "Unpicked", "Empty"} {
		if !child.ObjectAlreadyDeclared(name) {
			t.Fatalf("expected %q known as declared", name)
		}
	}
	if len(child.ObjectsListsToDeclare()) != 0 {
		t.Fatal("inheriting must not copy the parent's needed lists")
	}

	// Declaration knowledge is a copy taken at inheritance time.
	parent.ObjectsListNeeded("Later")
	if child.ObjectAlreadyDeclared("Later") {
		t.Fatal("later parent needs must not leak into the child")
	}
}

func TestScope_Reuse(t *testing.T) {
	parent := NewScope()
	parent.AllowReuse()
	other := NewScope()

	reused := NewScope()
	reused.Reuse(parent)
	if !reused.IsSameObjectsList("Hero", parent) {
		t.Fatal("a reused scope aliases its parent's lists")
	}
	if reused.IsSameObjectsList("Hero", other) {
		t.Fatal("aliasing only holds against the actual parent")
	}

	inherited := NewScope()
	inherited.InheritsFrom(parent)
	if inherited.IsSameObjectsList("Hero", parent) {
		t.Fatal("a plainly inherited scope owns its lists")
	}
}

func TestScope_CanReuseIsOptIn(t *testing.T) {
	s := NewScope()
	if s.CanReuse() {
		t.Fatal("reuse must be off by default")
	}
	s.AllowReuse()
	if !s.CanReuse() {
		t.Fatal("expected reuse allowed after opting in")
	}

	child := NewScope()
	child.InheritsFrom(s)
	if child.CanReuse() {
		t.Fatal("the opt-in must not be inherited")
	}
}

func TestScope_CurrentObject(t *testing.T) {
	s := NewScope()
	if s.CurrentObject() != "" {
		t.Fatalf("got %q", s.CurrentObject())
	}
	s.SetCurrentObject("Hero")
	if s.CurrentObject() != "Hero" {
		t.Fatalf("got %q", s.CurrentObject())
	}
	s.SetNoCurrentObject()
	if s.CurrentObject() != "" {
		t.Fatalf("got %q", s.CurrentObject())
	}
}
