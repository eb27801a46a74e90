// Package sheetyaml parses event sheets and platform extension files from
// YAML into the codegen model. It is intentionally the only place aware of
// the on-disk format: the codegen package stays format-agnostic.
package sheetyaml

import (
	"errors"
	"fmt"

	"eventc/cmd/eventc/codegen"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownEventKind       = errors.New("unknown event kind")
	ErrUnknownInstructionKind = errors.New("unknown instruction kind")
	ErrUnknownAccessKind      = errors.New("unknown access kind")
	ErrInvalidParameter       = errors.New("invalid parameter")
)

// Sheet is one parsed event sheet: the object containers and the event
// tree, ready to be handed to a Generator.
type Sheet struct {
	Platform      string
	GlobalObjects *codegen.ObjectsContainer
	SceneObjects  *codegen.ObjectsContainer
	Events        []codegen.Event
}

// ---- Internal YAML parsing structs ----------------------------------------
//
// These mirror the codegen types but carry YAML struct tags and handle
// format-specific concerns (polymorphic event nodes, scalar parameters kept
// as raw text). They are converted to codegen types before being returned.

type yamlSheet struct {
	Platform      string       `yaml:"platform"`
	GlobalObjects []yamlObject `yaml:"globalObjects,omitempty"`
	GlobalGroups  []yamlGroup  `yaml:"globalGroups,omitempty"`
	Objects       []yamlObject `yaml:"objects,omitempty"`
	Groups        []yamlGroup  `yaml:"groups,omitempty"`
	Events        []yaml.Node  `yaml:"events,omitempty"`
}

type yamlObject struct {
	Name      string            `yaml:"name"`
	Type      string            `yaml:"type"`
	Behaviors map[string]string `yaml:"behaviors,omitempty"`
}

type yamlGroup struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members,omitempty"`
}

// yamlEvent is the common shape of all event kinds; Kind selects the
// variant ("standard" when omitted).
type yamlEvent struct {
	Kind       string            `yaml:"kind,omitempty"`
	Disabled   bool              `yaml:"disabled,omitempty"`
	Name       string            `yaml:"name,omitempty"`
	Text       string            `yaml:"text,omitempty"`
	Conditions []yamlInstruction `yaml:"conditions,omitempty"`
	Actions    []yamlInstruction `yaml:"actions,omitempty"`
	Events     []yaml.Node       `yaml:"events,omitempty"`
}

type yamlInstruction struct {
	Type     string `yaml:"type"`
	Inverted bool   `yaml:"inverted,omitempty"`
	// Parameters are held as yaml.Node so unquoted scalars (numbers,
	// booleans) keep their raw textual form instead of being coerced.
	Parameters      []yaml.Node       `yaml:"parameters,omitempty"`
	SubInstructions []yamlInstruction `yaml:"subInstructions,omitempty"`
}

// ---- Sheet parsing ---------------------------------------------------------

// ParseSheet parses an event sheet document.
//
// Instruction UIDs are assigned in document order, so reloading the same
// unchanged sheet reproduces the same stable identities.
func ParseSheet(in []byte) (*Sheet, error) {
	var ys yamlSheet
	if err := yaml.Unmarshal(in, &ys); err != nil {
		return nil, fmt.Errorf("phase=parse path=<sheet>: %w", err)
	}

	sheet := &Sheet{
		Platform:      ys.Platform,
		GlobalObjects: codegen.NewObjectsContainer(),
		SceneObjects:  codegen.NewObjectsContainer(),
	}
	fillContainer(sheet.GlobalObjects, ys.GlobalObjects, ys.GlobalGroups)
	fillContainer(sheet.SceneObjects, ys.Objects, ys.Groups)

	nextUID := 0
	events, err := convertEvents(ys.Events, "events", &nextUID)
	if err != nil {
		return nil, err
	}
	sheet.Events = events
	return sheet, nil
}

func fillContainer(c *codegen.ObjectsContainer, objects []yamlObject, groups []yamlGroup) {
	for _, o := range objects {
		c.InsertObject(codegen.Object{Name: o.Name, Type: o.Type, Behaviors: o.Behaviors})
	}
	for _, g := range groups {
		c.InsertGroup(codegen.ObjectGroup{Name: g.Name, Members: g.Members})
	}
}

func convertEvents(nodes []yaml.Node, path string, nextUID *int) ([]codegen.Event, error) {
	events := make([]codegen.Event, 0, len(nodes))
	for i, node := range nodes {
		childPath := fmt.Sprintf("%s[%d]", path, i)
		var ye yamlEvent
		if err := node.Decode(&ye); err != nil {
			return nil, fmt.Errorf("phase=parse path=%s: %w", childPath, err)
		}
		event, err := convertEvent(ye, childPath, nextUID)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func convertEvent(ye yamlEvent, path string, nextUID *int) (codegen.Event, error) {
	sub, err := convertEvents(ye.Events, path+".events", nextUID)
	if err != nil {
		return nil, err
	}

	switch ye.Kind {
	case "", "standard":
		conditions, err := convertInstructions(ye.Conditions, path+".conditions", nextUID)
		if err != nil {
			return nil, err
		}
		actions, err := convertInstructions(ye.Actions, path+".actions", nextUID)
		if err != nil {
			return nil, err
		}
		return &codegen.StandardEvent{
			Conditions: conditions,
			Actions:    actions,
			Sub:        sub,
			Disabled:   ye.Disabled,
		}, nil

	case "group":
		return &codegen.GroupEvent{Name: ye.Name, Sub: sub, Disabled: ye.Disabled}, nil

	case "comment":
		return &codegen.CommentEvent{Text: ye.Text, Disabled: ye.Disabled}, nil

	default:
		return nil, fmt.Errorf("phase=parse path=%s: %w: %s", path, ErrUnknownEventKind, ye.Kind)
	}
}

func convertInstructions(in []yamlInstruction, path string, nextUID *int) ([]codegen.Instruction, error) {
	instructions := make([]codegen.Instruction, 0, len(in))
	for i, yi := range in {
		childPath := fmt.Sprintf("%s[%d]", path, i)
		parameters := make([]string, 0, len(yi.Parameters))
		for pi, pn := range yi.Parameters {
			if pn.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("phase=parse path=%s[%d]: %w: parameters must be scalars",
					childPath, pi, ErrInvalidParameter)
			}
			parameters = append(parameters, pn.Value)
		}
		sub, err := convertInstructions(yi.SubInstructions, childPath+".subInstructions", nextUID)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, codegen.Instruction{
			Type:            yi.Type,
			Parameters:      parameters,
			SubInstructions: sub,
			Inverted:        yi.Inverted,
			UID:             *nextUID,
		})
		*nextUID++
	}
	return instructions, nil
}
