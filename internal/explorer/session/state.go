package session

import (
	"context"
	"log"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/menu"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/tree"
)

// State is a point-in-time snapshot of a session, as served to clients.
type State struct {
	SessionID       string              `json:"sessionId"`
	Menu            menu.Code           `json:"menu"`
	MenuDisplayName string              `json:"menuDisplayName"`
	FilterType      string              `json:"filterType,omitempty"`
	FilterValue     string              `json:"filterValue,omitempty"`
	FilterOptions   []menu.FilterOption `json:"filterOptions"`
	Placeholder     string              `json:"placeholder"`
	Loading         bool                `json:"loading"`
	LoadingMore     bool                `json:"loadingMore"`
	Error           string              `json:"error,omitempty"`
	Page            int                 `json:"page"`
	HasMore         bool                `json:"hasMore"`
	Tree            []*tree.Node        `json:"tree"`
	SelectedID      string              `json:"selectedId,omitempty"`
	SelectedDetail  any                 `json:"selectedDetail,omitempty"`
}

// Snapshot returns the session's current state. The returned tree shares
// no nodes with the live one.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	// SetSelected doubles as the deep copy; with an empty id it only
	// clears flags that are already clear.
	treeCopy := tree.SetSelected(s.treeData, s.selectedID)

	state := State{
		SessionID:       s.id,
		Menu:            s.currentMenu,
		MenuDisplayName: menu.DisplayName(s.currentMenu),
		FilterType:      s.filterType,
		FilterValue:     s.filterValue,
		FilterOptions:   menu.FilterOptions(s.currentMenu),
		Placeholder:     menu.Placeholder(s.currentMenu, s.filterType),
		Loading:         s.loading,
		LoadingMore:     s.loadingMore,
		Error:           s.loadError,
		Page:            s.page,
		HasMore:         s.hasMore,
		Tree:            treeCopy,
		SelectedID:      s.selectedID,
	}
	// Submodel bodies come from the fetch cache; every other node kind
	// carries its payload on the node itself.
	if s.selectedID != "" {
		if sm, ok := s.details[s.selectedID]; ok {
			state.SelectedDetail = sm
		} else if node := tree.FindNode(treeCopy, s.selectedID); node != nil {
			state.SelectedDetail = node.Data
		}
	}
	if state.Tree == nil {
		state.Tree = []*tree.Node{}
	}
	return state
}

// Statistics are the per-menu shell counts and entity totals shown on the
// dashboard.
type Statistics struct {
	Total          int              `json:"total"`
	TotalSubmodels int              `json:"totalSubmodels"`
	TotalConcepts  int              `json:"totalConcepts"`
	Counts         map[string]int   `json:"counts"`
	Menus          []MenuStatistics `json:"menus"`
}

// MenuStatistics pairs one menu with its count.
type MenuStatistics struct {
	Code        menu.Code `json:"code"`
	DisplayName string    `json:"displayName"`
	Count       int       `json:"count"`
}

// Statistics classifies the full shell listing into menus and counts each
// one. This walks every repository page, so callers should treat it as an
// expensive dashboard refresh, not a per-request lookup.
func (s *Session) Statistics(ctx context.Context) (*Statistics, error) {
	return computeStatistics(ctx, s.fetcher)
}

func computeStatistics(ctx context.Context, fetcher Fetcher) (*Statistics, error) {
	shells, err := fetcher.ListAllShells(ctx)
	if err != nil {
		return nil, err
	}

	classified := menu.Classify(shells)
	stats := &Statistics{
		Total:  classified.Counts[menu.All],
		Counts: make(map[string]int, len(classified.Counts)),
	}
	for code, count := range classified.Counts {
		stats.Counts[string(code)] = count
	}
	for _, code := range menu.Codes() {
		stats.Menus = append(stats.Menus, MenuStatistics{
			Code:        code,
			DisplayName: menu.DisplayName(code),
			Count:       classified.Counts[code],
		})
	}

	// Entity totals come from the first repository page; a failing count
	// degrades that number to zero instead of failing the dashboard.
	smPage, smTotal, err := fetcher.ListSubmodels(ctx, 1)
	if err != nil {
		log.Printf("⚠️ Submodel count unavailable: %v", err)
	} else {
		if smTotal == 0 {
			smTotal = smPage.TotalElements
		}
		if smTotal == 0 {
			smTotal = len(smPage.Items)
		}
		stats.TotalSubmodels = smTotal
	}

	cdPage, err := fetcher.ListConceptDescriptions(ctx, 1, "")
	if err != nil {
		log.Printf("⚠️ Concept description count unavailable: %v", err)
	} else {
		total := cdPage.TotalElements
		if total == 0 {
			total = len(cdPage.Items)
		}
		stats.TotalConcepts = total
	}
	return stats, nil
}
