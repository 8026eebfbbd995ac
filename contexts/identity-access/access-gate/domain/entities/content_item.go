package entities

// ItemKind distinguishes the two content types the policy covers.
type ItemKind string

const (
	KindQuestion ItemKind = "question"
	KindAnswer   ItemKind = "answer"
)

// Action is a requested operation on content.
type Action string

const (
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionReadAll Action = "read_all"
)

// ContentItem is the policy's view of a question or answer: identity,
// owner, and (for answers) the parent question. Content bodies are not the
// gate's concern.
type ContentItem struct {
	ItemID   string   `json:"item_id"`
	OwnerID  string   `json:"owner_id"`
	Kind     ItemKind `json:"kind"`
	ParentID string   `json:"parent_id,omitempty"`
}
