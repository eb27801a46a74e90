package codegen

import (
	"strconv"
	"strings"
)

// Generator compiles an event tree into target-language source text.
//
// One Generator is one compile run: it owns the run-wide mutable state (the
// advisory error flag, the accumulated include set, the depth/size maxima
// and the unique-id allocator) and is never shared between goroutines. The
// walk is a synchronous, depth-first, left-to-right recursive descent whose
// order is observable in the emitted code and must not change.
//
// Per-instruction failures never abort the run: they degrade to inert code
// fragments (see the placeholder comments) or to an empty fragment plus the
// error flag, so one bad instruction cannot stop the rest of the tree from
// compiling.
type Generator struct {
	platform      string
	metadata      MetadataProvider
	expressions   ExpressionGenerator
	globalObjects *ObjectsContainer
	sceneObjects  *ObjectsContainer

	errorOccurred            bool
	includeFiles             map[string]struct{}
	maxCustomConditionsDepth int
	maxConditionsListsSize   int
	eventsListNextUniqueID   int
	instructionUniqueIDs     map[int]struct{}
	diagnostics              []string
}

// NewGenerator returns a generator for one compile run over the given
// global (project) and scene object containers.
func NewGenerator(
	platform string,
	metadata MetadataProvider,
	expressions ExpressionGenerator,
	globalObjects, sceneObjects *ObjectsContainer,
) *Generator {
	return &Generator{
		platform:             platform,
		metadata:             metadata,
		expressions:          expressions,
		globalObjects:        globalObjects,
		sceneObjects:         sceneObjects,
		includeFiles:         make(map[string]struct{}),
		instructionUniqueIDs: make(map[int]struct{}),
	}
}

// ReportError sets the run's advisory error flag. The generator always
// finishes; callers typically refuse to package the result when set.
func (g *Generator) ReportError() { g.errorOccurred = true }

// ErrorOccurred reports whether any structural defect was found.
func (g *Generator) ErrorOccurred() bool { return g.errorOccurred }

func (g *Generator) reportDiagnostic(message string) {
	g.diagnostics = append(g.diagnostics, message)
}

// Diagnostics returns the non-fatal warnings recorded during the run.
func (g *Generator) Diagnostics() []string { return g.diagnostics }

// AddIncludeFiles records include declarations the generated code depends
// on.
func (g *Generator) AddIncludeFiles(files []string) {
	for _, f := range files {
		g.includeFiles[f] = struct{}{}
	}
}

// IncludeFiles returns the accumulated include declarations, sorted.
func (g *Generator) IncludeFiles() []string {
	return sortedKeys(g.includeFiles)
}

// MaxCustomConditionsDepth returns the deepest custom-condition nesting
// seen during the run.
func (g *Generator) MaxCustomConditionsDepth() int { return g.maxCustomConditionsDepth }

// MaxConditionsListsSize returns the longest conditions list seen during
// the run.
func (g *Generator) MaxConditionsListsSize() int { return g.maxConditionsListsSize }

// Platform returns the platform the run compiles for.
func (g *Generator) Platform() string { return g.platform }

// GenerateScopeBegin opens an event's lexical scope.
func (g *Generator) GenerateScopeBegin(scope *Scope) string { return "{" }

// GenerateScopeEnd closes an event's lexical scope.
func (g *Generator) GenerateScopeEnd(scope *Scope) string { return "}" }

// GenerateBooleanInitializationToFalse declares a condition result flag,
// pre-initialized to false.
func (g *Generator) GenerateBooleanInitializationToFalse(name string, scope *Scope) string {
	return "bool " + name + " = false;\n"
}

// GenerateReferenceToUpperScopeBoolean lets code produced by a custom
// condition generator write its result through a fixed local name.
func (g *Generator) GenerateReferenceToUpperScopeBoolean(referenceName, referedBoolean string, scope *Scope) string {
	return "bool &" + referenceName + " = " + referedBoolean + ";\n"
}

// GenerateNegatedPredicate wraps a boolean expression in logical negation.
func (g *Generator) GenerateNegatedPredicate(predicate string) string {
	return "!(" + predicate + ")"
}

// conditionHandlesInversion reports whether the instruction consumes its
// inverted flag itself through a declared "conditionInverted" parameter, in
// which case the outer negation must not be applied a second time.
func conditionHandlesInversion(instrInfos *InstructionMetadata) bool {
	for _, p := range instrInfos.Parameters {
		if p.Type == "conditionInverted" {
			return true
		}
	}
	return false
}

// padParameters appends empty tokens until the instruction carries as many
// parameters as its metadata declares. Older or malformed sheets may have
// saved too few; the output must match having authored explicit empty
// tokens.
func padParameters(instruction *Instruction, instrInfos *InstructionMetadata) {
	for len(instruction.Parameters) < len(instrInfos.Parameters) {
		instruction.Parameters = append(instruction.Parameters, "")
	}
}

// checkObjectParameters verifies that every object parameter names a known
// object or group and, when the parameter requires an object type, that the
// resolved type matches. A failure is normal authoring inconsistency, not a
// bug: the whole instruction compiles to the returned inert placeholder.
func (g *Generator) checkObjectParameters(instruction *Instruction, instrInfos *InstructionMetadata) (string, bool) {
	for i, paramInfo := range instrInfos.Parameters {
		if !IsObjectParameter(paramInfo.Type) {
			continue
		}
		objectInParameter := instruction.Parameters[i]
		if !g.hasObjectOrGroup(objectInParameter) {
			return "/* Unknown object - skipped. */", false
		}
		if paramInfo.SupplementaryInformation != "" &&
			g.TypeOfObject(objectInParameter) != paramInfo.SupplementaryInformation {
			return "/* Mismatched object type - skipped. */", false
		}
	}
	return "", true
}

// GenerateConditionCode compiles one condition. Its boolean result is
// stored into returnBoolean.
func (g *Generator) GenerateConditionCode(condition *Instruction, returnBoolean string, scope *Scope) string {
	instrInfos, ok := g.metadata.ConditionMetadata(g.platform, condition.Type)
	if !ok {
		return "/* Unknown instruction - skipped. */"
	}

	g.AddIncludeFiles(instrInfos.CodeExtraInformation.IncludeFiles)
	if size := len(condition.SubInstructions); size > g.maxConditionsListsSize {
		g.maxConditionsListsSize = size
	}

	if custom := instrInfos.CodeExtraInformation.CustomCodeGenerator; custom != nil {
		scope.EnterCustomCondition()
		conditionCode := g.GenerateReferenceToUpperScopeBoolean("conditionTrue", returnBoolean, scope)
		conditionCode += custom(condition, g, scope)
		if depth := scope.CurrentConditionDepth(); depth > g.maxCustomConditionsDepth {
			g.maxCustomConditionsDepth = depth
		}
		scope.LeaveCustomCondition()
		return "{" + conditionCode + "}\n"
	}

	padParameters(condition, instrInfos)
	if placeholder, ok := g.checkObjectParameters(condition, instrInfos); !ok {
		return placeholder
	}

	var conditionCode string
	switch instrInfos.Kind {
	case ObjectInstruction:
		if len(instrInfos.Parameters) == 0 {
			break
		}
		objectName := condition.Parameters[0]
		if objectName == "" {
			break
		}
		for _, realObject := range g.ExpandObjectsName(objectName, scope) {
			objInfo := g.metadata.ObjectMetadata(g.platform, g.TypeOfObject(realObject))
			if objInfo.IsUnsupportedBaseObjectCapability(instrInfos.RequiredBaseObjectCapability) {
				conditionCode += "/* Object with unsupported capability - skipped. */\n"
				continue
			}
			g.AddIncludeFiles(objInfo.IncludeFiles)
			scope.SetCurrentObject(realObject)
			scope.ObjectsListNeeded(realObject)

			arguments := g.GenerateParametersCodes(condition.Parameters, instrInfos.Parameters, scope, nil)
			conditionCode += g.GenerateObjectCondition(
				realObject, objInfo, arguments, instrInfos, returnBoolean, condition.Inverted, scope)

			scope.SetNoCurrentObject()
		}

	case BehaviorInstruction:
		if len(instrInfos.Parameters) < 2 {
			break
		}
		objectName := condition.Parameters[0]
		behaviorName := condition.Parameters[1]
		behaviorInfo := g.metadata.BehaviorMetadata(g.platform, g.TypeOfBehavior(behaviorName))
		for _, realObject := range g.ExpandObjectsName(objectName, scope) {
			g.AddIncludeFiles(behaviorInfo.IncludeFiles)
			scope.SetCurrentObject(realObject)
			scope.ObjectsListNeeded(realObject)

			arguments := g.GenerateParametersCodes(condition.Parameters, instrInfos.Parameters, scope, nil)
			conditionCode += g.GenerateBehaviorCondition(
				realObject, behaviorName, behaviorInfo, arguments, instrInfos, returnBoolean, condition.Inverted, scope)

			scope.SetNoCurrentObject()
		}

	default:
		supplementary := []SupplementaryParameter{{
			Type:        "conditionInverted",
			Replacement: boolText(g, condition.Inverted),
		}}
		arguments := g.GenerateParametersCodes(condition.Parameters, instrInfos.Parameters, scope, supplementary)
		conditionCode += g.GenerateFreeCondition(arguments, instrInfos, returnBoolean, condition.Inverted, scope)
	}

	return conditionCode
}

func boolText(g *Generator, b bool) string {
	if b {
		return g.GenerateTrue()
	}
	return g.GenerateFalse()
}

// GenerateConditionsListCode compiles a list of conditions into a
// short-circuit chain: each condition's result lands in its own flag,
// pre-initialized to false, and condition i only executes inside nested
// guards over flags 0..i-1. Conditions can have side effects, so the lazy
// chain is a correctness requirement, not an optimization.
func (g *Generator) GenerateConditionsListCode(conditions []Instruction, scope *Scope) string {
	var outputCode strings.Builder

	for i := range conditions {
		outputCode.WriteString(g.GenerateBooleanInitializationToFalse(conditionFlagName(i), scope))
	}

	for cID := range conditions {
		conditionCode := g.GenerateConditionCode(&conditions[cID], conditionFlagName(cID), scope)
		if conditions[cID].Type != "" {
			for i := 0; i < cID; i++ {
				if i == 0 {
					outputCode.WriteString("if ( ")
				} else {
					outputCode.WriteString(" && ")
				}
				outputCode.WriteString(conditionFlagName(i))
				if i == cID-1 {
					outputCode.WriteString(") ")
				}
			}
			outputCode.WriteString("{\n")
			outputCode.WriteString(conditionCode)
			outputCode.WriteString("}")
		} else {
			// An empty type token is the old way of cancelling an
			// instruction; it stays visible to keep positional alignment
			// with recorded sub-instruction links.
			outputCode.WriteString("/* Skipped condition (empty type) */")
		}
	}

	if len(conditions) > g.maxConditionsListsSize {
		g.maxConditionsListsSize = len(conditions)
	}

	return outputCode.String()
}

func conditionFlagName(i int) string {
	return "condition" + strconv.Itoa(i) + "IsTrue"
}

// GenerateActionCode compiles one action.
func (g *Generator) GenerateActionCode(action *Instruction, scope *Scope) string {
	instrInfos, ok := g.metadata.ActionMetadata(g.platform, action.Type)
	if !ok {
		return "/* Unknown instruction - skipped. */"
	}

	g.AddIncludeFiles(instrInfos.CodeExtraInformation.IncludeFiles)

	if custom := instrInfos.CodeExtraInformation.CustomCodeGenerator; custom != nil {
		return custom(action, g, scope)
	}

	padParameters(action, instrInfos)
	if placeholder, ok := g.checkObjectParameters(action, instrInfos); !ok {
		return placeholder
	}

	var actionCode string
	switch instrInfos.Kind {
	case ObjectInstruction:
		if len(instrInfos.Parameters) == 0 {
			break
		}
		objectName := action.Parameters[0]
		for _, realObject := range g.ExpandObjectsName(objectName, scope) {
			objInfo := g.metadata.ObjectMetadata(g.platform, g.TypeOfObject(realObject))
			if objInfo.IsUnsupportedBaseObjectCapability(instrInfos.RequiredBaseObjectCapability) {
				actionCode += "/* Object with unsupported capability - skipped. */\n"
				continue
			}
			g.AddIncludeFiles(objInfo.IncludeFiles)
			scope.SetCurrentObject(realObject)
			scope.ObjectsListNeeded(realObject)

			arguments := g.GenerateParametersCodes(action.Parameters, instrInfos.Parameters, scope, nil)
			actionCode += g.GenerateObjectAction(realObject, objInfo, arguments, instrInfos, scope)

			scope.SetNoCurrentObject()
		}

	case BehaviorInstruction:
		if len(instrInfos.Parameters) < 2 {
			break
		}
		objectName := action.Parameters[0]
		behaviorName := action.Parameters[1]
		behaviorInfo := g.metadata.BehaviorMetadata(g.platform, g.TypeOfBehavior(behaviorName))
		for _, realObject := range g.ExpandObjectsName(objectName, scope) {
			g.AddIncludeFiles(behaviorInfo.IncludeFiles)
			scope.SetCurrentObject(realObject)
			scope.ObjectsListNeeded(realObject)

			arguments := g.GenerateParametersCodes(action.Parameters, instrInfos.Parameters, scope, nil)
			actionCode += g.GenerateBehaviorAction(realObject, behaviorName, behaviorInfo, arguments, instrInfos, scope)

			scope.SetNoCurrentObject()
		}

	default:
		arguments := g.GenerateParametersCodes(action.Parameters, instrInfos.Parameters, scope, nil)
		actionCode += g.GenerateFreeAction(arguments, instrInfos, scope)
	}

	return actionCode
}

// GenerateActionsListCode compiles actions sequentially, each wrapped in
// its own lexical block.
func (g *Generator) GenerateActionsListCode(actions []Instruction, scope *Scope) string {
	var outputCode strings.Builder
	for aID := range actions {
		actionCode := g.GenerateActionCode(&actions[aID], scope)
		outputCode.WriteString("{")
		if actions[aID].Type == "" {
			outputCode.WriteString("/* Skipped action (empty type) */")
		} else {
			outputCode.WriteString(actionCode)
		}
		outputCode.WriteString("}")
	}
	return outputCode.String()
}

// GenerateFreeCondition builds the boolean assignment for a free (global)
// condition.
func (g *Generator) GenerateFreeCondition(
	arguments []string,
	instrInfos *InstructionMetadata,
	returnBoolean string,
	conditionInverted bool,
	scope *Scope,
) string {
	var predicate string
	if valueKind := instrInfos.CodeExtraInformation.ValueKind; valueKind == "number" || valueKind == "string" {
		predicate = g.GenerateRelationalOperatorCall(
			instrInfos, arguments, instrInfos.CodeExtraInformation.FunctionCallName, 0)
	} else {
		predicate = instrInfos.CodeExtraInformation.FunctionCallName + "(" +
			g.GenerateArgumentsList(arguments, 0) + ")"
	}

	if conditionInverted && !conditionHandlesInversion(instrInfos) {
		predicate = g.GenerateNegatedPredicate(predicate)
	}

	return returnBoolean + " = " + predicate + ";\n"
}

// GenerateObjectCondition builds the per-object check for an object
// condition, down-casting to the object's concrete class when the first
// parameter requires a specific object type.
func (g *Generator) GenerateObjectCondition(
	objectName string,
	objInfo *ObjectMetadata,
	arguments []string,
	instrInfos *InstructionMetadata,
	returnBoolean string,
	conditionInverted bool,
	scope *Scope,
) string {
	var callName string
	if instrInfos.Parameters[0].SupplementaryInformation != "" {
		callName = "static_cast<" + objInfo.ClassName + "*>(" +
			g.GetObjectListName(objectName, scope) + "[i])->" +
			instrInfos.CodeExtraInformation.FunctionCallName
	} else {
		callName = g.GetObjectListName(objectName, scope) + "[i]->" +
			instrInfos.CodeExtraInformation.FunctionCallName
	}

	var predicate string
	if valueKind := instrInfos.CodeExtraInformation.ValueKind; valueKind == "number" || valueKind == "string" {
		predicate = g.GenerateRelationalOperatorCall(instrInfos, arguments, callName, 1)
	} else {
		predicate = callName + "(" + g.GenerateArgumentsList(arguments, 1) + ")"
	}
	if conditionInverted && !conditionHandlesInversion(instrInfos) {
		predicate = g.GenerateNegatedPredicate(predicate)
	}

	return "For each picked object \"" + objectName + "\", check " + predicate + ".\n"
}

// GenerateBehaviorCondition builds the per-object check for a behavior
// condition. Arguments start at 2: parameter 0 is the object, parameter 1
// the behavior name.
func (g *Generator) GenerateBehaviorCondition(
	objectName string,
	behaviorName string,
	behaviorInfo *BehaviorMetadata,
	arguments []string,
	instrInfos *InstructionMetadata,
	returnBoolean string,
	conditionInverted bool,
	scope *Scope,
) string {
	var predicate string
	if valueKind := instrInfos.CodeExtraInformation.ValueKind; valueKind == "number" || valueKind == "string" {
		predicate = g.GenerateRelationalOperatorCall(instrInfos, arguments, instrInfos.CodeExtraInformation.FunctionCallName, 2)
	} else {
		predicate = instrInfos.CodeExtraInformation.FunctionCallName + "(" +
			g.GenerateArgumentsList(arguments, 2) + ")"
	}
	if conditionInverted && !conditionHandlesInversion(instrInfos) {
		predicate = g.GenerateNegatedPredicate(predicate)
	}

	return "For each picked object \"" + objectName + "\", check " + predicate +
		" for behavior \"" + behaviorName + "\".\n"
}

// GenerateFreeAction builds the call for a free (global) action.
func (g *Generator) GenerateFreeAction(
	arguments []string,
	instrInfos *InstructionMetadata,
	scope *Scope,
) string {
	extra := &instrInfos.CodeExtraInformation
	var call string
	if extra.ValueKind == "number" || extra.ValueKind == "string" {
		switch extra.Access {
		case AccessOperatorOrAccessor:
			call = g.GenerateOperatorCall(instrInfos, arguments,
				extra.FunctionCallName, extra.OptionalAssociatedInstruction, 0)
		case AccessMutators:
			call = g.GenerateMutatorCall(instrInfos, arguments, extra.FunctionCallName, 0)
		case AccessPlain:
			call = extra.FunctionCallName + "(" + g.GenerateArgumentsList(arguments, 0) + ")"
		default:
			call = g.GenerateCompoundOperatorCall(instrInfos, arguments, extra.FunctionCallName, 0)
		}
	} else {
		call = extra.FunctionCallName + "(" + g.GenerateArgumentsList(arguments, 0) + ")"
	}
	return call + ";\n"
}

// GenerateObjectAction builds the per-object call for an object action.
// Arguments start at 1: parameter 0 is the object.
func (g *Generator) GenerateObjectAction(
	objectName string,
	objInfo *ObjectMetadata,
	arguments []string,
	instrInfos *InstructionMetadata,
	scope *Scope,
) string {
	extra := &instrInfos.CodeExtraInformation
	var call string
	if extra.ValueKind == "number" || extra.ValueKind == "string" {
		switch extra.Access {
		case AccessOperatorOrAccessor:
			call = g.GenerateOperatorCall(instrInfos, arguments,
				extra.FunctionCallName, extra.OptionalAssociatedInstruction, 1)
		case AccessMutators:
			call = g.GenerateMutatorCall(instrInfos, arguments, extra.FunctionCallName, 1)
		case AccessPlain:
			call = extra.FunctionCallName + "(" + g.GenerateArgumentsList(arguments, 1) + ")"
		default:
			call = g.GenerateCompoundOperatorCall(instrInfos, arguments, extra.FunctionCallName, 1)
		}
	} else {
		call = extra.FunctionCallName + "(" + g.GenerateArgumentsList(arguments, 1) + ")"
	}
	return "For each picked object \"" + objectName + "\", call " + call + ".\n"
}

// GenerateBehaviorAction builds the per-object call for a behavior action.
// Arguments start at 2: parameter 0 is the object, parameter 1 the
// behavior name.
func (g *Generator) GenerateBehaviorAction(
	objectName string,
	behaviorName string,
	behaviorInfo *BehaviorMetadata,
	arguments []string,
	instrInfos *InstructionMetadata,
	scope *Scope,
) string {
	extra := &instrInfos.CodeExtraInformation
	var call string
	if extra.ValueKind == "number" || extra.ValueKind == "string" {
		switch extra.Access {
		case AccessOperatorOrAccessor:
			call = g.GenerateOperatorCall(instrInfos, arguments,
				extra.FunctionCallName, extra.OptionalAssociatedInstruction, 2)
		case AccessMutators:
			call = g.GenerateMutatorCall(instrInfos, arguments, extra.FunctionCallName, 2)
		case AccessPlain:
			call = extra.FunctionCallName + "(" + g.GenerateArgumentsList(arguments, 2) + ")"
		default:
			call = g.GenerateCompoundOperatorCall(instrInfos, arguments, extra.FunctionCallName, 2)
		}
	} else {
		call = extra.FunctionCallName + "(" + g.GenerateArgumentsList(arguments, 2) + ")"
	}
	return "For each picked object \"" + objectName + "\", call " + call +
		" for behavior \"" + behaviorName + "\".\n"
}

// GenerateObjectsDeclarationCode emits the object-list declarations a
// scope's generated body demanded. A name never declared before pulls from
// the runtime's full object set; a name declared by an ancestor is copied
// from the ancestor's current (already narrowed) list — unless this scope
// aliases the ancestor's list, in which case only a reuse marker appears.
func (g *Generator) GenerateObjectsDeclarationCode(scope *Scope) string {
	declareObjectList := func(object string) string {
		objectListName := g.GetObjectListName(object, scope)
		if scope.Parent() == nil {
			// A declared-elsewhere list with no parent to copy from is a
			// logic error in the caller; skip the declaration but keep
			// the build alive.
			g.reportDiagnostic("a scope tried to use an already declared object list without having a parent")
			return "/* Could not declare " + objectListName + " */"
		}

		if scope.IsSameObjectsList(object, scope.Parent()) {
			return "/* Reuse " + objectListName + " */"
		}

		// A temporary is needed because the list names are identical
		// between scopes.
		copiedListName := g.GetObjectListName(object, scope.Parent())
		declarationCode := "std::vector<RuntimeObject*> & " + objectListName + "T = " + copiedListName + ";\n"
		declarationCode += "std::vector<RuntimeObject*> " + objectListName + " = " + objectListName + "T;\n"
		return declarationCode
	}

	var declarationsCode strings.Builder
	for _, object := range scope.ObjectsListsToDeclare() {
		var declaration string
		if !scope.ObjectAlreadyDeclared(object) {
			declaration = "std::vector<RuntimeObject*> " + g.GetObjectListName(object, scope) +
				" = runtimeContext->GetObjectsRawPointers(\"" + ConvertToString(object) + "\");\n"
			scope.SetObjectDeclared(object)
		} else {
			declaration = declareObjectList(object)
		}
		declarationsCode.WriteString(declaration + "\n")
	}
	for _, object := range scope.ObjectsListsToDeclareWithoutPicking() {
		var declaration string
		if !scope.ObjectAlreadyDeclared(object) {
			declaration = "std::vector<RuntimeObject*> " + g.GetObjectListName(object, scope) + ";\n"
			scope.SetObjectDeclared(object)
		} else {
			declaration = declareObjectList(object)
		}
		declarationsCode.WriteString(declaration + "\n")
	}
	for _, object := range scope.ObjectsListsToDeclareEmpty() {
		// An empty list is wanted regardless of what ancestors picked, so
		// an already declared name is simply re-declared empty.
		declaration := "std::vector<RuntimeObject*> " + g.GetObjectListName(object, scope) + ";\n"
		if !scope.ObjectAlreadyDeclared(object) {
			scope.SetObjectDeclared(object)
		}
		declarationsCode.WriteString(declaration + "\n")
	}

	return declarationsCode.String()
}

// GenerateEventsListCode compiles a list of sibling events. Each event gets
// its own scope inherited from the parent — objects picked in one event are
// unrelated to those picked in another. When the event is the last of the
// list and the parent scope allows it, the event aliases the parent's
// object lists instead of copying them: the parent's lists are discarded
// right after, and copying the picked-objects list is expensive.
func (g *Generator) GenerateEventsListCode(events []Event, parentScope *Scope) string {
	var output strings.Builder
	for eID := range events {
		scope := NewScope()
		if parentScope.CanReuse() && eID == len(events)-1 {
			scope.Reuse(parentScope)
		} else {
			scope.InheritsFrom(parentScope)
		}

		// The body is generated first: generating it is what fills the
		// scope's needed lists.
		eventCoreCode := events[eID].GenerateCode(g, scope)
		scopeBegin := g.GenerateScopeBegin(scope)
		scopeEnd := g.GenerateScopeEnd(scope)
		declarationsCode := g.GenerateObjectsDeclarationCode(scope)

		output.WriteString("\n" + scopeBegin + "\n" + declarationsCode + "\n" +
			eventCoreCode + "\n" + scopeEnd + "\n")
	}
	return output.String()
}

// GenerateSceneEventsCode compiles a whole top-level event tree: disabled
// and non-executable events are pruned, preprocessing hooks run, then the
// tree is generated under a fresh root scope.
func (g *Generator) GenerateSceneEventsCode(events []Event) string {
	events = PruneDisabledEvents(events)
	PreprocessEvents(g, events)
	return g.GenerateEventsListCode(events, NewScope())
}
