package models

// StructuralChangeType defines the kind of a DOM-level change.
type StructuralChangeType string

const (
	// ElementAdded indicates a node present only in the new tree.
	ElementAdded StructuralChangeType = "element_added"
	// ElementRemoved indicates a node present only in the old tree.
	ElementRemoved StructuralChangeType = "element_removed"
	// ElementModified indicates two positionally aligned nodes with
	// different tag names.
	ElementModified StructuralChangeType = "element_modified"
	// AttributeChanged indicates an attribute added, removed or changed on
	// an aligned node pair.
	AttributeChanged StructuralChangeType = "attribute_changed"
	// TextChanged indicates differing text content on aligned leaf nodes.
	TextChanged StructuralChangeType = "text_changed"
)

// StructuralChange describes one DOM-structural difference. Element carries
// the lowercased tag name, or "text" for text nodes.
type StructuralChange struct {
	Type       StructuralChangeType `json:"type"`
	Element    string               `json:"element"`
	Attribute  string               `json:"attribute,omitempty"`
	OldValue   string               `json:"old_value,omitempty"`
	NewValue   string               `json:"new_value,omitempty"`
	OldContent string               `json:"old_content,omitempty"`
	NewContent string               `json:"new_content,omitempty"`
}

// StructuralDiffResult holds the ordered change list produced by the
// structural differ. Degraded is set when parsing failed and the change list
// was collapsed to empty; it is internal bookkeeping and never exported.
type StructuralDiffResult struct {
	Changes  []StructuralChange `json:"changes"`
	Degraded bool               `json:"-"`
}
