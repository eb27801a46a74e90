package codegen

import (
	"fmt"
	"sort"
)

// Registry holds the instruction, object and behavior metadata of one
// platform. Metadata is registered once (typically from extension files)
// and then looked up by type key during generation.
//
// Registry implements MetadataProvider.
type Registry struct {
	platform   string
	conditions map[string]*InstructionMetadata
	actions    map[string]*InstructionMetadata
	objects    map[string]*ObjectMetadata
	behaviors  map[string]*BehaviorMetadata
}

// NewRegistry returns an empty registry for the given platform name.
func NewRegistry(platform string) *Registry {
	return &Registry{
		platform:   platform,
		conditions: make(map[string]*InstructionMetadata),
		actions:    make(map[string]*InstructionMetadata),
		objects:    make(map[string]*ObjectMetadata),
		behaviors:  make(map[string]*BehaviorMetadata),
	}
}

// Platform returns the platform name this registry serves.
func (r *Registry) Platform() string { return r.platform }

// RegisterCondition adds a condition's metadata.
// Returns ErrTypeAlreadyExists if the type key is already registered.
func (r *Registry) RegisterCondition(instructionType string, md *InstructionMetadata) error {
	if _, exists := r.conditions[instructionType]; exists {
		return fmt.Errorf("condition %s: %w", instructionType, ErrTypeAlreadyExists)
	}
	r.conditions[instructionType] = md
	return nil
}

// RegisterAction adds an action's metadata.
// Returns ErrTypeAlreadyExists if the type key is already registered.
func (r *Registry) RegisterAction(instructionType string, md *InstructionMetadata) error {
	if _, exists := r.actions[instructionType]; exists {
		return fmt.Errorf("action %s: %w", instructionType, ErrTypeAlreadyExists)
	}
	r.actions[instructionType] = md
	return nil
}

// RegisterObject adds an object type's metadata.
// Returns ErrTypeAlreadyExists if the type key is already registered.
func (r *Registry) RegisterObject(objectType string, md *ObjectMetadata) error {
	if _, exists := r.objects[objectType]; exists {
		return fmt.Errorf("object %s: %w", objectType, ErrTypeAlreadyExists)
	}
	r.objects[objectType] = md
	return nil
}

// RegisterBehavior adds a behavior type's metadata.
// Returns ErrTypeAlreadyExists if the type key is already registered.
func (r *Registry) RegisterBehavior(behaviorType string, md *BehaviorMetadata) error {
	if _, exists := r.behaviors[behaviorType]; exists {
		return fmt.Errorf("behavior %s: %w", behaviorType, ErrTypeAlreadyExists)
	}
	r.behaviors[behaviorType] = md
	return nil
}

func (r *Registry) ConditionMetadata(platform, instructionType string) (*InstructionMetadata, bool) {
	if platform != r.platform {
		return nil, false
	}
	md, ok := r.conditions[instructionType]
	return md, ok
}

func (r *Registry) ActionMetadata(platform, instructionType string) (*InstructionMetadata, bool) {
	if platform != r.platform {
		return nil, false
	}
	md, ok := r.actions[instructionType]
	return md, ok
}

func (r *Registry) ObjectMetadata(platform, objectType string) *ObjectMetadata {
	if platform == r.platform {
		if md, ok := r.objects[objectType]; ok {
			return md
		}
	}
	return &ObjectMetadata{}
}

func (r *Registry) BehaviorMetadata(platform, behaviorType string) *BehaviorMetadata {
	if platform == r.platform {
		if md, ok := r.behaviors[behaviorType]; ok {
			return md
		}
	}
	return &BehaviorMetadata{}
}

// ConditionTypes returns all registered condition type keys.
func (r *Registry) ConditionTypes() []string {
	return sortedKeys(r.conditions)
}

// ActionTypes returns all registered action type keys.
func (r *Registry) ActionTypes() []string {
	return sortedKeys(r.actions)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
