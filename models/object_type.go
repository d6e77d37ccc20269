package models

import "sort"

// ObjectType identifies the domain manager owning an object.
type ObjectType string

const (
	ObjectTypePassword       ObjectType = "password"
	ObjectTypeLink           ObjectType = "link"
	ObjectTypeDatabase       ObjectType = "database"
	ObjectTypeBrowsingTree   ObjectType = "browsing_tree"
	ObjectTypeFile           ObjectType = "file"
	ObjectTypeDocument       ObjectType = "document"
	ObjectTypeContact        ObjectType = "contact"
	ObjectTypeMyRemoteObject ObjectType = "my_remote_object"
)

// receivePriority is the order received objects are applied in. Databases
// must exist before documents reference them, and files before documents
// embed them.
var receivePriority = []ObjectType{
	ObjectTypeDatabase,
	ObjectTypeFile,
	ObjectTypeDocument,
	ObjectTypeLink,
	ObjectTypeBrowsingTree,
	ObjectTypePassword,
	ObjectTypeContact,
	ObjectTypeMyRemoteObject,
}

// KnownObjectTypes returns every built-in object type in receive order.
func KnownObjectTypes() []ObjectType {
	out := make([]ObjectType, len(receivePriority))
	copy(out, receivePriority)
	return out
}

// IsKnown reports whether t is one of the built-in object types.
func (t ObjectType) IsKnown() bool {
	return t.priority() < len(receivePriority)
}

func (t ObjectType) priority() int {
	for i, p := range receivePriority {
		if p == t {
			return i
		}
	}
	return len(receivePriority)
}

// SortByReceivePriority orders types the way they must be applied on
// receive. Unknown types follow the known ones, sorted by name.
func SortByReceivePriority(types []ObjectType) {
	sort.SliceStable(types, func(i, j int) bool {
		pi, pj := types[i].priority(), types[j].priority()
		if pi != pj {
			return pi < pj
		}
		return types[i] < types[j]
	})
}
