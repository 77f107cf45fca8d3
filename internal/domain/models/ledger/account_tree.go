package ledger

// AccountTreeNode wraps an account with its children. Nodes are built from a
// flat account list on every read and never persisted.
type AccountTreeNode struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	Description     *string            `json:"description"`
	ParentAccountID *int64             `json:"parentAccountId"`
	Children        []*AccountTreeNode `json:"children"`
}

// Forest maps root account IDs to their tree nodes. Non-root nodes are only
// reachable through Children.
type Forest map[int64]*AccountTreeNode

// ExpandState holds the caller's expand/collapse flags keyed by account ID.
// Missing entries count as collapsed.
type ExpandState map[int64]bool

// TraversalItem is one emitted row of an ordered traversal.
type TraversalItem struct {
	Node  *AccountTreeNode
	Depth int
}

// AccountTreeRow is the rendered form of a TraversalItem returned by the API.
type AccountTreeRow struct {
	Depth       int     `json:"depth"`
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ParentID    *int64  `json:"parentAccountId"`
	HasChildren bool    `json:"hasChildren"`
	Expanded    bool    `json:"expanded"`
}

// AccountTreeView is the response of the account tree endpoint.
type AccountTreeView struct {
	MaxDepth int              `json:"maxDepth"`
	Rows     []AccountTreeRow `json:"rows"`
}
