package session

import (
	"context"
	"strings"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/menu"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/tree"
)

// Search applies a filter to the session and loads the first page of
// results. On the ALL menu filterType selects an entity kind; on equipment
// menus it is an attribute filter path like
// "welding/search/inputpowervoltage".
func (s *Session) Search(ctx context.Context, filterType, filterValue string) error {
	s.mu.Lock()
	gen := s.bump()
	s.filterType = filterType
	s.filterValue = filterValue
	s.selectedID = ""
	s.loadError = ""
	s.treeData = nil
	s.unionResults = nil
	s.page = 1
	s.hasMore = true
	s.loading = true

	// Entity searches other than the open-ended AAS listing need a term.
	if s.currentMenu == menu.All && filterType != "" && filterType != "aas" &&
		strings.TrimSpace(filterValue) == "" {
		s.loadError = "Please enter search keyword"
		s.loading = false
		s.mu.Unlock()
		return common.NewErrBadRequest("search keyword required")
	}
	s.mu.Unlock()

	err := s.loadSearchPage(ctx, gen, 1)

	s.mu.Lock()
	if s.current(gen) {
		s.loading = false
	}
	autoLoad := s.current(gen) && err == nil && s.hasMore &&
		(strings.TrimSpace(filterValue) != "" || (s.currentMenu == menu.All && filterType == "aas"))
	s.mu.Unlock()

	if autoLoad {
		go s.autoLoad(gen, s.loadSearchPage)
	}
	return err
}

// loadSearchPage loads one page of the active search.
func (s *Session) loadSearchPage(ctx context.Context, gen uint64, page int) error {
	s.mu.Lock()
	code := s.currentMenu
	filterType := s.filterType
	filterValue := s.filterValue
	s.mu.Unlock()

	if code == menu.All {
		return s.loadEntitySearchPage(ctx, gen, page, filterType, filterValue)
	}
	return s.loadAttributeSearchPage(ctx, gen, page, code, filterType, filterValue)
}

// loadEntitySearchPage serves the ALL menu: keyword search over one entity
// kind, or the plain shell listing when no term is given.
func (s *Session) loadEntitySearchPage(ctx context.Context, gen uint64, page int, filterType, filterValue string) error {
	value := strings.TrimSpace(filterValue)

	if filterType == "aas" && value == "" {
		result, err := s.fetcher.ListShells(ctx, page, "")
		if err != nil {
			s.setError(gen, "Failed to load AAS data")
			s.mu.Lock()
			if s.current(gen) {
				s.hasMore = false
			}
			s.mu.Unlock()
			return err
		}
		return s.applySearchResults(gen, page, len(result.Items), func(language string) []*tree.Node {
			return tree.Assemble(result.Items, nil, "", language)
		}, "No AAS data found")
	}

	envelope, err := s.fetcher.SearchEntities(ctx, filterType, value, page)
	if err != nil {
		s.setError(gen, "An error occurred during the search.")
		return err
	}
	raw := envelope.Message

	switch filterType {
	case "submodel":
		items := model.DecodePage[model.Submodel](raw).Items
		return s.applySearchResults(gen, page, len(items), func(language string) []*tree.Node {
			return tree.AssembleSubmodelResults(items, value, language)
		}, "No search results found for the current menu.")

	case "conceptdescription":
		items := model.DecodePage[model.ConceptDescription](raw).Items
		// Concept ids are usually lowercase; retry a cased term once.
		if page == 1 && len(items) == 0 && value != strings.ToLower(value) {
			if retry, err := s.fetcher.SearchEntities(ctx, filterType, strings.ToLower(value), page); err == nil {
				items = model.DecodePage[model.ConceptDescription](retry.Message).Items
			}
		}
		return s.applySearchResults(gen, page, len(items), func(language string) []*tree.Node {
			return tree.AssembleConceptResults(items, language)
		}, "No search results found for the current menu.")

	default:
		items := model.DecodePage[model.AssetAdministrationShell](raw).Items
		return s.applySearchResults(gen, page, len(items), func(language string) []*tree.Node {
			return tree.Assemble(items, nil, value, language)
		}, "No search results found for the current menu.")
	}
}

// loadAttributeSearchPage serves equipment-menu attribute searches through
// the repository search endpoints. Results come back as shells with the
// submodels that matched, and are narrowed to the menu being browsed.
func (s *Session) loadAttributeSearchPage(ctx context.Context, gen uint64, page int, code menu.Code, filterType, filterValue string) error {
	filterPath := filterType
	if !strings.Contains(filterPath, "/") {
		// Bare attribute names go through the generic search route.
		filterPath = "search/" + filterPath
	}

	result, err := s.fetcher.SearchRepository(ctx, filterPath, strings.TrimSpace(filterValue))
	if err != nil {
		s.setError(gen, "An error occurred during the search.")
		return err
	}

	shells := menu.FilterByMenu(result.Shells, code)
	err = s.applySearchResults(gen, page, len(shells), func(language string) []*tree.Node {
		return tree.Assemble(shells, result.Submodels, filterValue, language)
	}, "No search results found for the current menu.")

	// The repository search endpoints are not paged; everything arrived in
	// this response.
	s.mu.Lock()
	if s.current(gen) {
		s.hasMore = false
	}
	s.mu.Unlock()
	return err
}

// applySearchResults merges one page of search results into the tree
// unless the generation moved on. build runs under the lock so it sees a
// consistent language setting.
func (s *Session) applySearchResults(gen uint64, page, count int, build func(language string) []*tree.Node, emptyMessage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(gen) {
		return nil
	}
	if count == 0 {
		s.hasMore = false
		if page == 1 {
			s.loadError = emptyMessage
		}
		return nil
	}
	s.appendPage(page, build(s.language))
	s.hasMore = count >= s.pageSize
	return nil
}
