package entities

// ModificationAction enumerates the estimate edits the chat agent may request.

type ModificationAction string

const (
	ActionAddItem        ModificationAction = "add_item"
	ActionRemoveItem     ModificationAction = "remove_item"
	ActionUpdateItem     ModificationAction = "update_item"
	ActionAddCategory    ModificationAction = "add_category"
	ActionRemoveCategory ModificationAction = "remove_category"
)

func (a ModificationAction) Valid() bool {
	switch a {
	case ActionAddItem, ActionRemoveItem, ActionUpdateItem, ActionAddCategory, ActionRemoveCategory:
		return true
	}
	return false
}

// ModificationInstruction is one structured estimate edit emitted by the chat
// agent. Applied once against current project state, then discarded; Reason is
// surfaced to the user but never stored on the project.

type ModificationInstruction struct {
	Action    ModificationAction `json:"action"`
	Category  CategoryType       `json:"category"`
	ItemIndex *int               `json:"itemIndex,omitempty"`
	Item      *LineItem          `json:"item,omitempty"`
	Reason    string             `json:"reason"`
}
