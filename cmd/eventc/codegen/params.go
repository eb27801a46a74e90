package codegen

import (
	"strconv"
	"strings"
)

// SupplementaryParameter maps an extra caller-supplied parameter type to
// its replacement text. Free conditions use it to thread the inverted flag
// into instructions declaring a "conditionInverted" parameter.
type SupplementaryParameter struct {
	Type        string
	Replacement string
}

// ConvertToString escapes a raw token for inclusion inside a double-quoted
// target-language string literal. The backslash pass runs first so escapes
// inserted by the later passes are never re-escaped.
func ConvertToString(plain string) string {
	plain = strings.ReplaceAll(plain, "\\", "\\\\")
	plain = strings.ReplaceAll(plain, "\r", "\\r")
	plain = strings.ReplaceAll(plain, "\n", "\\n")
	plain = strings.ReplaceAll(plain, "\"", "\\\"")
	return plain
}

// ConvertToStringExplicit escapes a raw token and wraps it in double
// quotes, producing a complete string literal.
func ConvertToStringExplicit(plain string) string {
	return "\"" + ConvertToString(plain) + "\""
}

// GenerateTrue returns the target-language boolean true literal.
func (g *Generator) GenerateTrue() string { return "true" }

// GenerateFalse returns the target-language boolean false literal.
func (g *Generator) GenerateFalse() string { return "false" }

// GenerateObject returns the code giving access to the object list of the
// named object or group within the scope.
func (g *Generator) GenerateObject(objectName, parameterType string, scope *Scope) string {
	return g.GetObjectListName(objectName, scope)
}

// GenerateBehaviorNameCode returns the code carrying a behavior's name: an
// explicit string literal.
func (g *Generator) GenerateBehaviorNameCode(behaviorName string) string {
	return ConvertToStringExplicit(behaviorName)
}

// GetObjectListName returns the identifier of the object's list in the
// generated code.
func (g *Generator) GetObjectListName(objectName string, scope *Scope) string {
	return mangleObjectListName(objectName)
}

var relationalOperators = map[string]struct{}{
	"==": {}, "<": {}, ">": {}, "<=": {}, ">=": {}, "!=": {},
}

var assignmentOperators = map[string]struct{}{
	"=": {}, "+": {}, "-": {}, "/": {}, "*": {},
}

// GenerateParameterCodes translates one raw parameter token into its
// target-language argument code, dispatching on the parameter's declared
// type. Unknown types are looked up in supplementaryTypes first and
// otherwise degrade to an escaped string literal plus a diagnostic — a bad
// parameter never aborts generation.
func (g *Generator) GenerateParameterCodes(
	parameter string,
	metadata ParameterMetadata,
	scope *Scope,
	lastObjectName string,
	supplementaryTypes []SupplementaryParameter,
) string {
	switch {
	case isNumberExpression(metadata.Type):
		return g.expressions.GenerateExpressionCode(g, scope, "number", parameter, "")

	case isStringExpression(metadata.Type):
		return g.expressions.GenerateExpressionCode(g, scope, "string", parameter, "")

	case isVariableParameter(metadata.Type):
		return g.expressions.GenerateExpressionCode(g, scope, metadata.Type, parameter, lastObjectName)

	case IsObjectParameter(metadata.Type):
		return g.GenerateObject(parameter, metadata.Type, scope)

	case IsBehaviorParameter(metadata.Type):
		return g.GenerateBehaviorNameCode(parameter)

	case metadata.Type == "relationalOperator":
		op := strings.Trim(parameter, "\"")
		if op == "=" {
			op = "=="
		}
		if _, valid := relationalOperators[op]; !valid {
			g.reportDiagnostic("bad relational operator " + strconv.Quote(parameter) + ": set to == by default")
			op = "=="
		}
		return "\"" + op + "\""

	case metadata.Type == "operator":
		op := strings.Trim(parameter, "\"")
		if _, valid := assignmentOperators[op]; !valid {
			g.reportDiagnostic("bad operator " + strconv.Quote(parameter) + ": set to = by default")
			op = "="
		}
		return "\"" + op + "\""

	case metadata.Type == "yesorno":
		if parameter == "yes" || parameter == "oui" {
			return g.GenerateTrue()
		}
		return g.GenerateFalse()

	case metadata.Type == "trueorfalse":
		if parameter == "True" || parameter == "Vrai" {
			return g.GenerateTrue()
		}
		return g.GenerateFalse()

	case metadata.Type == "key", metadata.Type == "mouse":
		return ConvertToStringExplicit(parameter)

	case isResourceParameter(metadata.Type):
		return ConvertToStringExplicit(parameter)

	case metadata.Type == "inlineCode":
		// Author-supplied code fragment, emitted verbatim; the raw
		// parameter itself is ignored.
		return metadata.SupplementaryInformation

	default:
		for _, supplementary := range supplementaryTypes {
			if supplementary.Type == metadata.Type {
				return supplementary.Replacement
			}
		}
		if metadata.Type != "" {
			g.reportDiagnostic("unknown type of parameter \"" + metadata.Type + "\"")
		}
		return ConvertToStringExplicit(parameter)
	}
}

// isResourceParameter reports whether the tag names a resource reference,
// compiled as a string literal. The last four are deprecated aliases from
// older sheets that must keep behaving like their modern counterparts.
func isResourceParameter(parameterType string) bool {
	switch parameterType {
	case "audioResource", "bitmapFontResource", "fontResource",
		"imageResource", "jsonResource", "videoResource",
		"password", "musicfile", "soundfile", "police":
		return true
	}
	return false
}

// GenerateParametersCodes compiles every parameter of an instruction. The
// raw parameters must already be padded to the metadata's arity. The most
// recently seen object parameter's raw value is threaded to variable-like
// parameters, which need it to resolve instance variables.
func (g *Generator) GenerateParametersCodes(
	parameters []string,
	parametersInfo []ParameterMetadata,
	scope *Scope,
	supplementaryTypes []SupplementaryParameter,
) []string {
	arguments := make([]string, 0, len(parametersInfo))
	lastObjectName := ""
	for i, info := range parametersInfo {
		value := ""
		if i < len(parameters) {
			value = parameters[i]
		}
		arguments = append(arguments,
			g.GenerateParameterCodes(value, info, scope, lastObjectName, supplementaryTypes))
		if IsObjectParameter(info.Type) {
			lastObjectName = value
		}
	}
	return arguments
}
