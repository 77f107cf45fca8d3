package ledger

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	// ErrInvalidAccount is returned when the account being reparented is not
	// part of the supplied account set.
	ErrInvalidAccount = fmt.Errorf("invalid account: %w", domain.ErrNotFound)

	// ErrInvalidParentReference is returned when a parent chain points at an
	// account that is not part of the supplied account set.
	ErrInvalidParentReference = fmt.Errorf("invalid parent reference: %w", domain.ErrDataIntegrity)

	// ErrParentNotFound is returned by BuildForest when an account references
	// a parent missing from the input.
	ErrParentNotFound = fmt.Errorf("parent not found: %w", domain.ErrDataIntegrity)
)

// WouldCreateCycle reports whether setting accountID's parent to
// proposedParentID would make the parent chain starting at accountID revisit
// an account instead of ending at a root.
//
// accounts must be the owner's complete account set. Nothing is mutated.
func WouldCreateCycle(accounts []models.Account, accountID, proposedParentID int64) (bool, error) {
	parents := make(map[int64]*int64, len(accounts))
	for i := range accounts {
		parents[accounts[i].ID] = accounts[i].ParentAccountID
	}

	if _, ok := parents[accountID]; !ok {
		return false, fmt.Errorf("account %d: %w", accountID, ErrInvalidAccount)
	}

	visited := map[int64]struct{}{accountID: {}}
	parent := &proposedParentID

	for parent != nil {
		if _, seen := visited[*parent]; seen {
			return true, nil
		}

		next, ok := parents[*parent]
		if !ok {
			return false, fmt.Errorf("account %d: %w", *parent, ErrInvalidParentReference)
		}
		visited[*parent] = struct{}{}
		parent = next
	}

	return false, nil
}

// BuildForest links a flat account list into trees and returns the roots
// keyed by ID. Children are ordered by ID so the result does not depend on
// input order.
//
// Accounts caught in a cycle are never attached to a root and therefore do
// not show up in the forest.
func BuildForest(accounts []models.Account) (models.Forest, error) {
	nodes := make(map[int64]*models.AccountTreeNode, len(accounts))
	for i := range accounts {
		a := &accounts[i]
		nodes[a.ID] = &models.AccountTreeNode{
			ID:              a.ID,
			Name:            a.Name,
			Description:     a.Description,
			ParentAccountID: a.ParentAccountID,
			Children:        []*models.AccountTreeNode{},
		}
	}

	forest := make(models.Forest)
	for i := range accounts {
		a := &accounts[i]
		node := nodes[a.ID]
		if a.ParentAccountID == nil {
			forest[a.ID] = node
			continue
		}

		parent, ok := nodes[*a.ParentAccountID]
		if !ok {
			return nil, fmt.Errorf("account %d references parent %d: %w", a.ID, *a.ParentAccountID, ErrParentNotFound)
		}
		parent.Children = append(parent.Children, node)
	}

	for _, node := range nodes {
		slices.SortFunc(node.Children, func(a, b *models.AccountTreeNode) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}

	return forest, nil
}

// MaxDepth returns the longest root-to-leaf distance in edges.
func MaxDepth(forest models.Forest) int {
	deepest := 0
	for _, root := range forest {
		if d := nodeDepth(root); d > deepest {
			deepest = d
		}
	}
	return deepest
}

func nodeDepth(node *models.AccountTreeNode) int {
	if len(node.Children) == 0 {
		return 0
	}
	deepest := 0
	for _, child := range node.Children {
		if d := nodeDepth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// OrderedTraversal yields the forest depth-first, pre-order, with siblings
// sorted by name using the collation rules of lang. A node's descendants are
// only visited when expanded[node.ID] is true.
//
// The sequence can be ranged over any number of times. The forest itself is
// left untouched.
func OrderedTraversal(forest models.Forest, expanded models.ExpandState, lang language.Tag) iter.Seq[models.TraversalItem] {
	return func(yield func(models.TraversalItem) bool) {
		// collate.Collator keeps scratch buffers, one per traversal.
		c := collate.New(lang)

		roots := make([]*models.AccountTreeNode, 0, len(forest))
		for _, root := range forest {
			roots = append(roots, root)
		}

		walkOrdered(c, roots, 0, expanded, yield)
	}
}

func walkOrdered(c *collate.Collator, nodes []*models.AccountTreeNode, depth int, expanded models.ExpandState, yield func(models.TraversalItem) bool) bool {
	for _, node := range sortedByName(c, nodes) {
		if !yield(models.TraversalItem{Node: node, Depth: depth}) {
			return false
		}
		if expanded[node.ID] && len(node.Children) > 0 {
			if !walkOrdered(c, node.Children, depth+1, expanded, yield) {
				return false
			}
		}
	}
	return true
}

func sortedByName(c *collate.Collator, nodes []*models.AccountTreeNode) []*models.AccountTreeNode {
	sorted := slices.Clone(nodes)
	slices.SortStableFunc(sorted, func(a, b *models.AccountTreeNode) int {
		if r := c.CompareString(a.Name, b.Name); r != 0 {
			return r
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}

// Flatten collects an ordered traversal into a slice.
func Flatten(forest models.Forest, expanded models.ExpandState, lang language.Tag) []models.TraversalItem {
	return slices.Collect(OrderedTraversal(forest, expanded, lang))
}

// ExpandAll returns an ExpandState with every node of the forest expanded.
func ExpandAll(forest models.Forest) models.ExpandState {
	state := make(models.ExpandState)
	var mark func(n *models.AccountTreeNode)
	mark = func(n *models.AccountTreeNode) {
		state[n.ID] = true
		for _, child := range n.Children {
			mark(child)
		}
	}
	for _, root := range forest {
		mark(root)
	}
	return state
}
