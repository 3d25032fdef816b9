package dom

// MutationOp is the type of mutation performed on a document-attached node.
type MutationOp uint8

const (
	OpInsertNode MutationOp = 0x01 // Insert node under Parent at Index
	OpRemoveNode MutationOp = 0x02 // Remove node from Parent
	OpSetText    MutationOp = 0x03 // Update text/comment content
	OpSetAttr    MutationOp = 0x04 // Set/update attribute
	OpRemoveAttr MutationOp = 0x05 // Remove attribute
	OpSetValue   MutationOp = 0x06 // Set live form-control value
	OpSetHTML    MutationOp = 0x07 // Replace content with raw markup
)

// String returns the string representation of the MutationOp.
func (op MutationOp) String() string {
	switch op {
	case OpInsertNode:
		return "InsertNode"
	case OpRemoveNode:
		return "RemoveNode"
	case OpSetText:
		return "SetText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpSetValue:
		return "SetValue"
	case OpSetHTML:
		return "SetHTML"
	default:
		return "Unknown"
	}
}

// Mutation records a single change to a document-attached node.
// Observers receive mutations synchronously, in the order they happen.
type Mutation struct {
	Op     MutationOp
	Node   *Node
	Parent *Node // For InsertNode/RemoveNode
	Index  int   // Position for InsertNode, prior position for RemoveNode
	Key    string
	Value  string
}

// MutationObserver receives mutation records from a document.
type MutationObserver func(Mutation)
