package toolgate

// Parse consumes the raw tool-call descriptors of one LLM turn, decodes each
// argument payload, classifies each name against the Policy, and registers
// the results in the call Registry.
//
// The batch is all-or-nothing: a descriptor with a missing id or
// function.name, or an undecodable argument payload, makes Parse return a
// *MalformedCallError and register nothing. A partially-parsed turn is worse
// than a rejected one.
//
// Returns the constructed calls in input order. Re-parsing a previously seen
// id overwrites the prior record (see Registry.Upsert).
func (e *Executor) Parse(raw []RawToolCall) ([]*ToolCall, error) {
	calls := make([]*ToolCall, 0, len(raw))
	for _, rc := range raw {
		if rc.ID == "" {
			return nil, &MalformedCallError{Field: "id"}
		}
		if rc.Function.Name == "" {
			return nil, &MalformedCallError{CallID: rc.ID, Field: "function.name"}
		}
		args, err := decodeArguments(rc.ID, rc.Function.Arguments)
		if err != nil {
			return nil, &MalformedCallError{CallID: rc.ID, Err: err}
		}
		calls = append(calls, &ToolCall{
			ID:        rc.ID,
			Name:      rc.Function.Name,
			Arguments: args,
			Status:    e.opts.policy.InitialStatus(rc.Function.Name),
		})
	}
	// The whole batch validated; only now touch the Registry.
	for _, c := range calls {
		e.calls.Upsert(c)
	}
	return calls, nil
}
