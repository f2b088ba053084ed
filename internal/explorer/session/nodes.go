package session

import (
	"context"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/tree"
)

// Toggle expands or collapses a node. Expanding a submodel node for the
// first time fetches its body and replaces the lazy placeholder with the
// element tree; while the fetch runs, a loading sentinel is shown.
func (s *Session) Toggle(ctx context.Context, nodeID string) error {
	s.mu.Lock()
	gen := s.generation
	node := tree.FindNode(s.treeData, nodeID)
	if node == nil {
		s.mu.Unlock()
		return common.NewErrNotFound(nodeID)
	}

	s.treeData = tree.ToggleExpanded(s.treeData, nodeID)
	node = tree.FindNode(s.treeData, nodeID)

	needsLoad := node.Type == tree.NodeSubmodel && node.Expanded && hasPlaceholder(node)
	if needsLoad {
		s.treeData = tree.ReplaceChildren(s.treeData, nodeID, []*tree.Node{tree.LoadingNode()})
	}
	s.mu.Unlock()

	if !needsLoad {
		return nil
	}
	return s.loadSubmodelChildren(ctx, gen, nodeID)
}

// Select marks a node as the current selection. Selecting a submodel node
// whose body has not been fetched yet fetches it first, so the detail view
// has data to show; submodel nodes that already carry their body (eagerly
// expanded search results) are never refetched, which would rebuild their
// children without the search annotations.
func (s *Session) Select(ctx context.Context, nodeID string) error {
	s.mu.Lock()
	gen := s.generation
	node := tree.FindNode(s.treeData, nodeID)
	if node == nil {
		s.mu.Unlock()
		return common.NewErrNotFound(nodeID)
	}
	_, detailKnown := s.details[nodeID]
	if !detailKnown {
		if sm, ok := node.Data.(*model.Submodel); ok {
			s.details[nodeID] = sm
			detailKnown = true
		}
	}
	needsLoad := node.Type == tree.NodeSubmodel && !detailKnown
	s.treeData = tree.SetSelected(s.treeData, nodeID)
	s.selectedID = nodeID
	s.mu.Unlock()

	if !needsLoad {
		return nil
	}
	return s.loadSubmodelChildren(ctx, gen, nodeID)
}

// loadSubmodelChildren fetches a submodel body and attaches its elements
// beneath the node. Failures leave an error sentinel in place.
func (s *Session) loadSubmodelChildren(ctx context.Context, gen uint64, nodeID string) error {
	sm, err := s.fetcher.GetSubmodel(ctx, nodeID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(gen) {
		return nil
	}
	if err != nil {
		s.treeData = tree.ReplaceChildren(s.treeData, nodeID, []*tree.Node{tree.ErrorNode()})
		return err
	}

	s.details[nodeID] = sm
	children := []*tree.Node{}
	if len(sm.SubmodelElements) > 0 {
		children = tree.BuildElements(sm.SubmodelElements, nodeID, "", s.language)
	}
	s.treeData = tree.SetData(s.treeData, nodeID, sm)
	s.treeData = tree.ReplaceChildren(s.treeData, nodeID, children)
	return nil
}

// hasPlaceholder reports whether a node still carries its lazy stand-in
// child (or no children at all).
func hasPlaceholder(node *tree.Node) bool {
	if len(node.Children) == 0 {
		return true
	}
	return node.Children[0].Type == tree.NodePlaceholder
}
