package codegen

// NextUniqueIDForEventsList returns a monotonically increasing counter used
// to name synthetic per-event-list temporaries.
func (g *Generator) NextUniqueIDForEventsList() int {
	id := g.eventsListNextUniqueID
	g.eventsListNextUniqueID++
	return id
}

// SingleUsageUniqueIDFor derives a unique id from the instruction's stable
// identity, so regenerating code for the same unchanged sheet yields the
// same ids.
//
// An instruction normally gets exactly one id per run, but the same
// instruction can appear more than once in the events when links are used.
// The id is then bumped until free, which keeps ids unique and stable given
// the same link order. A nil instruction is a caller bug: it is reported as
// a diagnostic and allocated from the zero identity so the run can finish.
func (g *Generator) SingleUsageUniqueIDFor(instruction *Instruction) int {
	id := 0
	if instruction == nil {
		g.reportDiagnostic("a nil instruction was passed to SingleUsageUniqueIDFor")
	} else {
		id = instruction.UID
	}

	for {
		if _, taken := g.instructionUniqueIDs[id]; !taken {
			break
		}
		id++
	}
	g.instructionUniqueIDs[id] = struct{}{}
	return id
}
