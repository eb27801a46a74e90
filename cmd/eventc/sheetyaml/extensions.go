package sheetyaml

import (
	"fmt"

	"eventc/cmd/eventc/codegen"

	"gopkg.in/yaml.v3"
)

// yamlExtension is one platform extension file: the instruction, object and
// behavior metadata it contributes.
type yamlExtension struct {
	Extension    string             `yaml:"extension"`
	IncludeFiles []string           `yaml:"includeFiles,omitempty"`
	Conditions   []yamlInstrMeta    `yaml:"conditions,omitempty"`
	Actions      []yamlInstrMeta    `yaml:"actions,omitempty"`
	Objects      []yamlObjectMeta   `yaml:"objects,omitempty"`
	Behaviors    []yamlBehaviorMeta `yaml:"behaviors,omitempty"`
}

type yamlInstrMeta struct {
	Type       string            `yaml:"type"`
	Kind       string            `yaml:"kind,omitempty"` // free (default), object, behavior
	ValueKind  string            `yaml:"valueKind,omitempty"`
	Access     string            `yaml:"access,omitempty"`
	Call       string            `yaml:"call"`
	Getter     string            `yaml:"getter,omitempty"`
	Mutators   map[string]string `yaml:"mutators,omitempty"`
	Capability string            `yaml:"capability,omitempty"`
	// Parameters are polymorphic: a bare scalar is a parameter type tag, a
	// mapping carries the type plus supplementary information.
	Parameters   []yaml.Node `yaml:"parameters,omitempty"`
	IncludeFiles []string    `yaml:"includeFiles,omitempty"`
}

type yamlParameterMeta struct {
	Type          string `yaml:"type"`
	Supplementary string `yaml:"supplementary,omitempty"`
}

type yamlObjectMeta struct {
	Type                    string   `yaml:"type"`
	Class                   string   `yaml:"class,omitempty"`
	IncludeFiles            []string `yaml:"includeFiles,omitempty"`
	UnsupportedCapabilities []string `yaml:"unsupportedCapabilities,omitempty"`
}

type yamlBehaviorMeta struct {
	Type         string   `yaml:"type"`
	Class        string   `yaml:"class,omitempty"`
	IncludeFiles []string `yaml:"includeFiles,omitempty"`
}

// ParseExtensionInto parses one extension document and registers its
// metadata into the registry.
func ParseExtensionInto(reg *codegen.Registry, in []byte) error {
	var ext yamlExtension
	if err := yaml.Unmarshal(in, &ext); err != nil {
		return fmt.Errorf("phase=parse path=<extension>: %w", err)
	}
	path := ext.Extension
	if path == "" {
		path = "<extension>"
	}

	for i, ym := range ext.Conditions {
		md, err := convertInstructionMetadata(ym, ext.IncludeFiles,
			fmt.Sprintf("%s.conditions[%d]", path, i))
		if err != nil {
			return err
		}
		if err := reg.RegisterCondition(ym.Type, md); err != nil {
			return fmt.Errorf("phase=register path=%s: %w", path, err)
		}
	}
	for i, ym := range ext.Actions {
		md, err := convertInstructionMetadata(ym, ext.IncludeFiles,
			fmt.Sprintf("%s.actions[%d]", path, i))
		if err != nil {
			return err
		}
		if err := reg.RegisterAction(ym.Type, md); err != nil {
			return fmt.Errorf("phase=register path=%s: %w", path, err)
		}
	}
	for _, om := range ext.Objects {
		unsupported := make(map[string]struct{}, len(om.UnsupportedCapabilities))
		for _, c := range om.UnsupportedCapabilities {
			unsupported[c] = struct{}{}
		}
		md := &codegen.ObjectMetadata{
			ClassName:                         om.Class,
			IncludeFiles:                      om.IncludeFiles,
			UnsupportedBaseObjectCapabilities: unsupported,
		}
		if err := reg.RegisterObject(om.Type, md); err != nil {
			return fmt.Errorf("phase=register path=%s: %w", path, err)
		}
	}
	for _, bm := range ext.Behaviors {
		md := &codegen.BehaviorMetadata{ClassName: bm.Class, IncludeFiles: bm.IncludeFiles}
		if err := reg.RegisterBehavior(bm.Type, md); err != nil {
			return fmt.Errorf("phase=register path=%s: %w", path, err)
		}
	}
	return nil
}

func convertInstructionMetadata(ym yamlInstrMeta, extensionIncludes []string, path string) (*codegen.InstructionMetadata, error) {
	kind, err := instructionKind(ym.Kind, path)
	if err != nil {
		return nil, err
	}
	access, err := accessKind(ym.Access, path)
	if err != nil {
		return nil, err
	}

	parameters := make([]codegen.ParameterMetadata, 0, len(ym.Parameters))
	for i, pn := range ym.Parameters {
		pm, err := convertParameterMetadata(pn, fmt.Sprintf("%s.parameters[%d]", path, i))
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, pm)
	}

	includes := append(append([]string{}, extensionIncludes...), ym.IncludeFiles...)
	return &codegen.InstructionMetadata{
		Kind:       kind,
		Parameters: parameters,
		CodeExtraInformation: codegen.ExtraInformation{
			FunctionCallName:              ym.Call,
			ValueKind:                     ym.ValueKind,
			Access:                        access,
			OptionalAssociatedInstruction: ym.Getter,
			Mutators:                      ym.Mutators,
			IncludeFiles:                  includes,
		},
		RequiredBaseObjectCapability: ym.Capability,
	}, nil
}

func convertParameterMetadata(pn yaml.Node, path string) (codegen.ParameterMetadata, error) {
	switch pn.Kind {
	case yaml.ScalarNode:
		return codegen.ParameterMetadata{Type: pn.Value}, nil
	case yaml.MappingNode:
		var pm yamlParameterMeta
		if err := pn.Decode(&pm); err != nil {
			return codegen.ParameterMetadata{}, fmt.Errorf("phase=parse path=%s: %w", path, err)
		}
		return codegen.ParameterMetadata{Type: pm.Type, SupplementaryInformation: pm.Supplementary}, nil
	default:
		return codegen.ParameterMetadata{}, fmt.Errorf("phase=parse path=%s: %w: unexpected YAML kind %d",
			path, ErrInvalidParameter, pn.Kind)
	}
}

func instructionKind(kind, path string) (codegen.InstructionKind, error) {
	switch kind {
	case "", "free":
		return codegen.FreeInstruction, nil
	case "object":
		return codegen.ObjectInstruction, nil
	case "behavior":
		return codegen.BehaviorInstruction, nil
	default:
		return 0, fmt.Errorf("phase=parse path=%s: %w: %s", path, ErrUnknownInstructionKind, kind)
	}
}

func accessKind(access, path string) (codegen.AccessKind, error) {
	switch access {
	case "", "compound":
		return codegen.AccessCompound, nil
	case "operatorOrAccessor":
		return codegen.AccessOperatorOrAccessor, nil
	case "mutators":
		return codegen.AccessMutators, nil
	case "plain":
		return codegen.AccessPlain, nil
	default:
		return 0, fmt.Errorf("phase=parse path=%s: %w: %s", path, ErrUnknownAccessKind, access)
	}
}
