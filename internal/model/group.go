package model

// Group is all operations sharing one tag, in source order.
type Group struct {
	Tag        string
	Operations []Operation
}

// GroupedOperations partitions operations by tag. Group order is the
// first-seen order of each tag in the operation list.
type GroupedOperations []Group

// GroupByTag partitions the model's operations by tag in a single pass.
// An empty model yields an empty grouping.
func GroupByTag(m *OperationModel) GroupedOperations {
	var groups GroupedOperations
	index := make(map[string]int)
	for _, op := range m.Operations {
		i, ok := index[op.Tag]
		if !ok {
			i = len(groups)
			index[op.Tag] = i
			groups = append(groups, Group{Tag: op.Tag})
		}
		groups[i].Operations = append(groups[i].Operations, op)
	}
	return groups
}

// OperationIDs returns every operation id across all groups, in group
// order then source order.
func (g GroupedOperations) OperationIDs() []string {
	var ids []string
	for _, group := range g {
		for _, op := range group.Operations {
			ids = append(ids, op.ID)
		}
	}
	return ids
}
