package codegen

import (
	"reflect"
	"testing"
)

func expandFixture() *Generator {
	scene := NewObjectsContainer()
	scene.InsertObject(Object{Name: "Hero", Type: "Sprite"})
	scene.InsertObject(Object{Name: "Coin", Type: "Sprite"})
	scene.InsertObject(Object{Name: "Sign", Type: "Text"})
	scene.InsertGroup(ObjectGroup{Name: "Pickables", Members: []string{"Coin", "Hero"}})

	global := NewObjectsContainer()
	global.InsertObject(Object{Name: "Hud", Type: "Text"})
	global.InsertGroup(ObjectGroup{Name: "Pickables", Members: []string{"Hud"}})
	global.InsertGroup(ObjectGroup{Name: "Overlays", Members: []string{"Hud", "Sign"}})

	return NewGenerator("base", NewRegistry("base"), RawExpressionGenerator{}, global, scene)
}

func TestExpandObjectsName(t *testing.T) {
	g := expandFixture()

	t.Run("plain object name expands to itself", func(t *testing.T) {
		got := g.ExpandObjectsName("Hero", NewScope())
		if !reflect.DeepEqual(got, []string{"Hero"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("scene group wins over the global group of the same name", func(t *testing.T) {
		got := g.ExpandObjectsName("Pickables", NewScope())
		if !reflect.DeepEqual(got, []string{"Coin", "Hero"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("global group is used when no scene group matches", func(t *testing.T) {
		got := g.ExpandObjectsName("Overlays", NewScope())
		if !reflect.DeepEqual(got, []string{"Hud", "Sign"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("current object collapses the expansion", func(t *testing.T) {
		scope := NewScope()
		scope.SetCurrentObject("Hero")
		got := g.ExpandObjectsName("Pickables", scope)
		if !reflect.DeepEqual(got, []string{"Hero"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("current object outside the expansion changes nothing", func(t *testing.T) {
		scope := NewScope()
		scope.SetCurrentObject("Sign")
		got := g.ExpandObjectsName("Pickables", scope)
		if !reflect.DeepEqual(got, []string{"Coin", "Hero"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("stale group members are dropped", func(t *testing.T) {
		gen := expandFixture()
		gen.sceneObjects.InsertGroup(ObjectGroup{Name: "Stale", Members: []string{"Hero", "Ghost", "Coin"}})
		got := gen.ExpandObjectsName("Stale", NewScope())
		if !reflect.DeepEqual(got, []string{"Hero", "Coin"}) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("unknown plain name expands to nothing", func(t *testing.T) {
		got := g.ExpandObjectsName("Ghost", NewScope())
		if len(got) != 0 {
			t.Fatalf("got %v", got)
		}
	})
}

func TestTypeOfObject(t *testing.T) {
	g := expandFixture()
	g.sceneObjects.InsertObject(Object{Name: "Hud", Type: "Sprite"})

	tests := []struct {
		name string
		want string
	}{
		{"Hero", "Sprite"},
		{"Hud", "Sprite"}, // scene definition shadows the global one
		{"Pickables", "Sprite"},
		{"Overlays", ""}, // members disagree once Hud is a scene Sprite
		{"Ghost", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.TypeOfObject(tt.name); got != tt.want {
				t.Fatalf("TypeOfObject(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestTypeOfObjectCyclicGroups(t *testing.T) {
	t.Run("self-referential group resolves to the base type", func(t *testing.T) {
		g := expandFixture()
		g.sceneObjects.InsertGroup(ObjectGroup{Name: "Loop", Members: []string{"Loop"}})
		if got := g.TypeOfObject("Loop"); got != "" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("mutually recursive groups resolve to the base type", func(t *testing.T) {
		g := expandFixture()
		g.sceneObjects.InsertGroup(ObjectGroup{Name: "Ping", Members: []string{"Pong"}})
		g.sceneObjects.InsertGroup(ObjectGroup{Name: "Pong", Members: []string{"Ping"}})
		if got := g.TypeOfObject("Ping"); got != "" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("duplicate object members still resolve", func(t *testing.T) {
		g := expandFixture()
		g.sceneObjects.InsertGroup(ObjectGroup{Name: "Twice", Members: []string{"Hero", "Hero"}})
		if got := g.TypeOfObject("Twice"); got != "Sprite" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("group reached through two branches still resolves", func(t *testing.T) {
		g := expandFixture()
		g.sceneObjects.InsertGroup(ObjectGroup{Name: "Sprites", Members: []string{"Hero", "Coin"}})
		g.sceneObjects.InsertGroup(ObjectGroup{Name: "Both", Members: []string{"Sprites", "Sprites"}})
		if got := g.TypeOfObject("Both"); got != "Sprite" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestTypeOfBehavior(t *testing.T) {
	scene := NewObjectsContainer()
	scene.InsertObject(Object{
		Name: "Hero", Type: "Sprite",
		Behaviors: map[string]string{"Drag": "DraggableBehavior"},
	})
	global := NewObjectsContainer()
	global.InsertObject(Object{
		Name: "Hud", Type: "Text",
		Behaviors: map[string]string{"Fade": "FadeBehavior"},
	})
	g := NewGenerator("base", NewRegistry("base"), RawExpressionGenerator{}, global, scene)

	if got := g.TypeOfBehavior("Drag"); got != "DraggableBehavior" {
		t.Fatalf("got %q", got)
	}
	if got := g.TypeOfBehavior("Fade"); got != "FadeBehavior" {
		t.Fatalf("got %q", got)
	}
	if got := g.TypeOfBehavior("Nope"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestHasObjectOrGroup(t *testing.T) {
	g := expandFixture()
	for _, name := range []string{"Hero", "Hud", "Pickables", "Overlays"} {
		if !g.hasObjectOrGroup(name) {
			t.Fatalf("expected %q known", name)
		}
	}
	if g.hasObjectOrGroup("Ghost") {
		t.Fatal("expected Ghost unknown")
	}
}
