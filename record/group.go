package record

// Group holds all records sharing one GroupID.
type Group[T Record] struct {
	ID      string
	Members []T
}

// Groups groups records by GroupID. Groups come back in the order their first
// member appears in records, and members keep their relative order.
func Groups[T Record](records []T) []Group[T] {
	positions := make(map[string]int)
	var groups []Group[T]

	for _, r := range records {
		groupID := r.GroupID()
		position, found := positions[groupID]

		if !found {
			positions[groupID] = len(groups)
			groups = append(groups, Group[T]{ID: groupID, Members: []T{r}})
			continue
		}

		groups[position].Members = append(groups[position].Members, r)
	}

	return groups
}

// IndexByGroupID is the lookup form of Groups.
func IndexByGroupID[T Record](records []T) map[string][]T {
	index := make(map[string][]T, len(records))

	for _, r := range records {
		index[r.GroupID()] = append(index[r.GroupID()], r)
	}

	return index
}

func Paths[T Record](records []T) []string {
	paths := make([]string, 0, len(records))

	for _, r := range records {
		paths = append(paths, r.Path())
	}

	return paths
}
