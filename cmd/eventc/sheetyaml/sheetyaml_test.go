package sheetyaml

import (
	"errors"
	"strings"
	"testing"

	"eventc/cmd/eventc/codegen"
)

func mustContain(t *testing.T, got string, subs ...string) {
	t.Helper()
	for _, sub := range subs {
		if !strings.Contains(got, sub) {
			t.Fatalf("expected %q to contain %q", got, sub)
		}
	}
}

func TestParseSheet_ObjectsAndGroups(t *testing.T) {
	sheet, err := ParseSheet([]byte(`
platform: base
globalObjects:
  - name: Hud
    type: TextObject::Text
objects:
  - name: Hero
    type: Sprite
    behaviors:
      Drag: DraggableBehavior
  - name: Coin
    type: Sprite
groups:
  - name: Pickables
    members: [Coin, Hero]
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sheet.Platform != "base" {
		t.Fatalf("platform = %q", sheet.Platform)
	}
	if !sheet.GlobalObjects.HasObjectNamed("Hud") {
		t.Fatal("expected the global object Hud")
	}
	hero, ok := sheet.SceneObjects.GetObject("Hero")
	if !ok || hero.Type != "Sprite" {
		t.Fatalf("Hero = %+v, ok = %v", hero, ok)
	}
	if hero.Behaviors["Drag"] != "DraggableBehavior" {
		t.Fatalf("behaviors = %v", hero.Behaviors)
	}
	group, ok := sheet.SceneObjects.GetGroup("Pickables")
	if !ok || len(group.Members) != 2 || group.Members[0] != "Coin" {
		t.Fatalf("group = %+v, ok = %v", group, ok)
	}
}

func TestParseSheet_EventKinds(t *testing.T) {
	sheet, err := ParseSheet([]byte(`
platform: base
events:
  - conditions:
      - type: Check
    actions:
      - type: Quit
    events:
      - kind: comment
        text: inner note
  - kind: group
    name: level intro
    events:
      - actions:
          - type: Quit
  - kind: comment
    text: outer note
    disabled: true
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sheet.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(sheet.Events))
	}

	std, ok := sheet.Events[0].(*codegen.StandardEvent)
	if !ok {
		t.Fatalf("events[0] = %T", sheet.Events[0])
	}
	if len(std.Conditions) != 1 || std.Conditions[0].Type != "Check" {
		t.Fatalf("conditions = %+v", std.Conditions)
	}
	if len(std.Sub) != 1 {
		t.Fatalf("sub-events = %d", len(std.Sub))
	}
	if _, ok := std.Sub[0].(*codegen.CommentEvent); !ok {
		t.Fatalf("sub[0] = %T", std.Sub[0])
	}

	grp, ok := sheet.Events[1].(*codegen.GroupEvent)
	if !ok || grp.Name != "level intro" || len(grp.Sub) != 1 {
		t.Fatalf("events[1] = %+v", sheet.Events[1])
	}

	cmt, ok := sheet.Events[2].(*codegen.CommentEvent)
	if !ok || cmt.Text != "outer note" || !cmt.IsDisabled() {
		t.Fatalf("events[2] = %+v", sheet.Events[2])
	}
}

func TestParseSheet_InstructionDetails(t *testing.T) {
	sheet, err := ParseSheet([]byte(`
platform: base
events:
  - conditions:
      - type: Or
        inverted: true
        subInstructions:
          - type: CheckA
            parameters: [Hero, ">", 100]
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	std := sheet.Events[0].(*codegen.StandardEvent)
	or := std.Conditions[0]
	if !or.Inverted {
		t.Fatal("expected the condition inverted")
	}
	if len(or.SubInstructions) != 1 {
		t.Fatalf("sub-instructions = %+v", or.SubInstructions)
	}

	// Unquoted scalars keep their raw textual form.
	params := or.SubInstructions[0].Parameters
	if len(params) != 3 || params[0] != "Hero" || params[1] != ">" || params[2] != "100" {
		t.Fatalf("parameters = %v", params)
	}
}

func TestParseSheet_UIDsAreStable(t *testing.T) {
	doc := []byte(`
platform: base
events:
  - conditions:
      - type: CheckA
      - type: CheckB
    actions:
      - type: Act
`)
	first, err := ParseSheet(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ParseSheet(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	collect := func(s *Sheet) []int {
		std := s.Events[0].(*codegen.StandardEvent)
		var uids []int
		for _, c := range std.Conditions {
			uids = append(uids, c.UID)
		}
		for _, a := range std.Actions {
			uids = append(uids, a.UID)
		}
		return uids
	}

	a, b := collect(first), collect(second)
	seen := make(map[int]struct{})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("uids differ between parses: %v vs %v", a, b)
		}
		if _, dup := seen[a[i]]; dup {
			t.Fatalf("duplicate uid in %v", a)
		}
		seen[a[i]] = struct{}{}
	}
}

func TestParseSheet_Errors(t *testing.T) {
	t.Run("unknown event kind", func(t *testing.T) {
		_, err := ParseSheet([]byte(`
events:
  - kind: teleport
`))
		if !errors.Is(err, ErrUnknownEventKind) {
			t.Fatalf("err = %v", err)
		}
		mustContain(t, err.Error(), "phase=parse", "path=events[0]", "teleport")
	})

	t.Run("non-scalar parameter", func(t *testing.T) {
		_, err := ParseSheet([]byte(`
events:
  - actions:
      - type: Act
        parameters:
          - [not, a, scalar]
`))
		if !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("err = %v", err)
		}
		mustContain(t, err.Error(), "phase=parse", "path=events[0].actions[0]")
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := ParseSheet([]byte("platform: [unclosed"))
		if err == nil {
			t.Fatal("expected an error")
		}
		mustContain(t, err.Error(), "phase=parse", "path=<sheet>")
	})
}
