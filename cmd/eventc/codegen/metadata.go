package codegen

// InstructionKind tells the generator how an instruction picks its targets.
type InstructionKind int

const (
	// FreeInstruction operates on no object: a global function call.
	FreeInstruction InstructionKind = iota
	// ObjectInstruction operates on the object named by parameter 0.
	ObjectInstruction
	// BehaviorInstruction operates on the object named by parameter 0
	// through the behavior named by parameter 1.
	BehaviorInstruction
)

// AccessKind tells the generator how an action with a "number" or "string"
// value kind rewrites its operator parameter into the final call.
type AccessKind int

const (
	// AccessCompound folds the operator into a compound assignment:
	// call(args) += (rhs).
	AccessCompound AccessKind = iota
	// AccessOperatorOrAccessor rewrites read-modify-write through a getter:
	// setter(getter(args) op (rhs)).
	AccessOperatorOrAccessor
	// AccessMutators maps the operator through the instruction's mutator
	// name table: call(args).Mutator(rhs).
	AccessMutators
	// AccessPlain forces a direct call with no operator folding.
	AccessPlain
)

// ParameterMetadata describes one declared parameter of an instruction.
type ParameterMetadata struct {
	// Type is the parameter's type tag (see the Is* predicates below).
	Type string

	// SupplementaryInformation depends on Type: the required object type
	// for object parameters, or the verbatim code fragment for inlineCode
	// parameters.
	SupplementaryInformation string
}

// CustomCodeGenerator is an instruction-specific override that bypasses the
// standard parameter and call compilation entirely.
type CustomCodeGenerator func(instruction *Instruction, gen *Generator, scope *Scope) string

// ExtraInformation carries the code-generation half of an instruction's
// metadata: what to call and how to shape the call.
type ExtraInformation struct {
	FunctionCallName string

	// ValueKind is "number", "string" or empty. Number/string conditions
	// compile to relational calls; number/string actions compile through
	// the operator rewrites selected by Access.
	ValueKind string

	Access AccessKind

	// OptionalAssociatedInstruction is the getter call name used by
	// AccessOperatorOrAccessor.
	OptionalAssociatedInstruction string

	// Mutators maps operator tokens to mutator method names for
	// AccessMutators.
	Mutators map[string]string

	CustomCodeGenerator CustomCodeGenerator

	IncludeFiles []string
}

// InstructionMetadata describes one instruction type of the platform.
type InstructionMetadata struct {
	Kind                 InstructionKind
	Parameters           []ParameterMetadata
	CodeExtraInformation ExtraInformation

	// RequiredBaseObjectCapability names a capability an object type may
	// lack; objects lacking it are skipped individually.
	RequiredBaseObjectCapability string
}

// ObjectMetadata describes one object type. Its zero value is the sentinel
// for unknown object types: the base object, which has a class name of ""
// and supports every capability.
type ObjectMetadata struct {
	ClassName    string
	IncludeFiles []string

	// UnsupportedBaseObjectCapabilities holds capability tags the object
	// type does not support.
	UnsupportedBaseObjectCapabilities map[string]struct{}
}

// IsUnsupportedBaseObjectCapability reports whether the given required
// capability is declared unsupported. An empty requirement is always
// supported.
func (m *ObjectMetadata) IsUnsupportedBaseObjectCapability(capability string) bool {
	if capability == "" {
		return false
	}
	_, unsupported := m.UnsupportedBaseObjectCapabilities[capability]
	return unsupported
}

// BehaviorMetadata describes one behavior type. Its zero value is the
// sentinel for unknown behavior types.
type BehaviorMetadata struct {
	ClassName    string
	IncludeFiles []string
}

// MetadataProvider resolves metadata by (platform, type key).
//
// Implementations never fail: unknown instruction keys report ok=false,
// unknown object/behavior types return the zero-value sentinel (never nil).
type MetadataProvider interface {
	ConditionMetadata(platform, instructionType string) (*InstructionMetadata, bool)
	ActionMetadata(platform, instructionType string) (*InstructionMetadata, bool)
	ObjectMetadata(platform, objectType string) *ObjectMetadata
	BehaviorMetadata(platform, behaviorType string) *BehaviorMetadata
}

// ExpressionGenerator compiles the expression sub-language. It is expected
// to be inert-safe: on malformed input it returns best-effort text rather
// than failing, and the generator does not retry.
type ExpressionGenerator interface {
	GenerateExpressionCode(gen *Generator, scope *Scope, valueKind, expression, lastObjectName string) string
}

// RawExpressionGenerator is the pass-through ExpressionGenerator: it emits
// the raw expression text unchanged. Used by tests and by the CLI when no
// real expression compiler is plugged in.
type RawExpressionGenerator struct{}

func (RawExpressionGenerator) GenerateExpressionCode(_ *Generator, _ *Scope, _, expression, _ string) string {
	return expression
}

// IsObjectParameter reports whether the parameter type tag is an object
// reference.
func IsObjectParameter(parameterType string) bool {
	return parameterType == "object" ||
		parameterType == "objectPtr" ||
		parameterType == "objectList" ||
		parameterType == "objectListWithoutPicking"
}

// IsBehaviorParameter reports whether the parameter type tag is a behavior
// reference.
func IsBehaviorParameter(parameterType string) bool {
	return parameterType == "behavior"
}

// isNumberExpression reports whether the tag is compiled by the expression
// generator as a number. "expression" is the deprecated alias for "number".
func isNumberExpression(parameterType string) bool {
	return parameterType == "number" || parameterType == "expression"
}

// isStringExpression reports whether the tag is compiled by the expression
// generator as a string.
func isStringExpression(parameterType string) bool {
	switch parameterType {
	case "string", "layer", "color", "file", "joyaxis":
		return true
	}
	return false
}

// isVariableParameter reports whether the tag is one of the variable
// subtypes, which are compiled by the expression generator with the last
// resolved object name as context.
func isVariableParameter(parameterType string) bool {
	switch parameterType {
	case "objectvar", "globalvar", "scenevar":
		return true
	}
	return false
}
