package codegen

import "strings"

// findOperatorIndex scans the declared parameters from startFromArgument
// for the single parameter of the given type tag. The position is
// discovered by scanning because instructions place the operator after a
// variable-length prefix of object and behavior parameters.
func findOperatorIndex(parameters []ParameterMetadata, operatorType string, startFromArgument int) int {
	index := len(parameters)
	for i := startFromArgument; i < len(parameters); i++ {
		if parameters[i].Type == operatorType {
			index = i
		}
	}
	return index
}

// stripOperatorQuotes removes the string-literal quotes the parameter
// compiler wrapped around an operator token.
func stripOperatorQuotes(operator string) string {
	if len(operator) > 2 && strings.HasPrefix(operator, "\"") && strings.HasSuffix(operator, "\"") {
		return operator[1 : len(operator)-1]
	}
	return operator
}

// GenerateRelationalOperatorCall builds `call(args) <op> rhs`. The
// relational operator's position is deduced from the declared parameter
// types; the right-hand side is the compiled argument just after it.
// Arguments before startFromArgument are skipped (leading object/behavior
// parameters).
//
// A missing value parameter after the operator is a structural metadata
// defect: the run's error flag is set and an empty fragment returned.
func (g *Generator) GenerateRelationalOperatorCall(
	instrInfos *InstructionMetadata,
	arguments []string,
	callStartString string,
	startFromArgument int,
) string {
	operatorIndex := findOperatorIndex(instrInfos.Parameters, "relationalOperator", startFromArgument)
	if operatorIndex+1 >= len(instrInfos.Parameters) {
		g.ReportError()
		return ""
	}

	operator := stripOperatorQuotes(arguments[operatorIndex])
	rhs := arguments[operatorIndex+1]

	return callStartString + "(" +
		joinArgumentsSkipping(arguments, startFromArgument, operatorIndex) +
		") " + operator + " " + rhs
}

// GenerateOperatorCall builds a setter call whose value argument folds the
// operator in through a getter: `setter(getter(args) <op> (rhs))`, or
// `setter(rhs)` directly when the operator is `=`.
func (g *Generator) GenerateOperatorCall(
	instrInfos *InstructionMetadata,
	arguments []string,
	callStartString string,
	getterStartString string,
	startFromArgument int,
) string {
	operatorIndex := findOperatorIndex(instrInfos.Parameters, "operator", startFromArgument)
	if operatorIndex+1 >= len(instrInfos.Parameters) {
		g.ReportError()
		return ""
	}

	operator := stripOperatorQuotes(arguments[operatorIndex])
	rhs := arguments[operatorIndex+1]
	getterArguments := joinArgumentsSkipping(arguments, startFromArgument, operatorIndex)

	var argumentsStr strings.Builder
	for i := startFromArgument; i < len(arguments); i++ {
		if i != operatorIndex && i != operatorIndex+1 {
			if argumentsStr.Len() != 0 {
				argumentsStr.WriteString(", ")
			}
			argumentsStr.WriteString(arguments[i])
		}
		if i == operatorIndex+1 {
			if argumentsStr.Len() != 0 {
				argumentsStr.WriteString(", ")
			}
			if operator != "=" {
				argumentsStr.WriteString(getterStartString + "(" + getterArguments + ") " +
					operator + " (" + rhs + ")")
			} else {
				argumentsStr.WriteString(rhs)
			}
		}
	}

	return callStartString + "(" + argumentsStr.String() + ")"
}

// GenerateCompoundOperatorCall builds `call(args) <op>= (rhs)`, mapping the
// +,-,*,/ operator tokens to their compound assignment forms and leaving a
// literal `=` as plain assignment.
func (g *Generator) GenerateCompoundOperatorCall(
	instrInfos *InstructionMetadata,
	arguments []string,
	callStartString string,
	startFromArgument int,
) string {
	operatorIndex := findOperatorIndex(instrInfos.Parameters, "operator", startFromArgument)
	if operatorIndex+1 >= len(instrInfos.Parameters) {
		g.ReportError()
		return ""
	}

	operator := stripOperatorQuotes(arguments[operatorIndex])
	switch operator {
	case "+":
		operator = "+="
	case "-":
		operator = "-="
	case "/":
		operator = "/="
	case "*":
		operator = "*="
	}

	rhs := arguments[operatorIndex+1]
	return callStartString + "(" +
		joinArgumentsSkipping(arguments, startFromArgument, operatorIndex) +
		") " + operator + " (" + rhs + ")"
}

// GenerateMutatorCall builds `call(args).<mutator>(rhs)`, resolving the
// mutator method through the instruction's mutator name table. An operator
// token absent from the table is a structural defect: the run's error flag
// is set and an empty fragment returned.
func (g *Generator) GenerateMutatorCall(
	instrInfos *InstructionMetadata,
	arguments []string,
	callStartString string,
	startFromArgument int,
) string {
	operatorIndex := findOperatorIndex(instrInfos.Parameters, "operator", startFromArgument)
	if operatorIndex+1 >= len(instrInfos.Parameters) {
		g.ReportError()
		return ""
	}

	operator := stripOperatorQuotes(arguments[operatorIndex])
	mutator, ok := instrInfos.CodeExtraInformation.Mutators[operator]
	if !ok {
		g.ReportError()
		return ""
	}

	rhs := arguments[operatorIndex+1]
	return callStartString + "(" +
		joinArgumentsSkipping(arguments, startFromArgument, operatorIndex) +
		")." + mutator + "(" + rhs + ")"
}

// GenerateArgumentsList joins compiled arguments with ", ", starting at
// startFrom.
func (g *Generator) GenerateArgumentsList(arguments []string, startFrom int) string {
	var b strings.Builder
	for i := startFrom; i < len(arguments); i++ {
		if b.Len() != 0 {
			b.WriteString(", ")
		}
		b.WriteString(arguments[i])
	}
	return b.String()
}

// joinArgumentsSkipping joins arguments from startFrom with ", ", leaving
// out the operator/value pair at operatorIndex and operatorIndex+1.
func joinArgumentsSkipping(arguments []string, startFrom, operatorIndex int) string {
	var b strings.Builder
	for i := startFrom; i < len(arguments); i++ {
		if i == operatorIndex || i == operatorIndex+1 {
			continue
		}
		if b.Len() != 0 {
			b.WriteString(", ")
		}
		b.WriteString(arguments[i])
	}
	return b.String()
}
