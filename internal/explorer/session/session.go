/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package session holds the per-client explorer state: the current menu,
// active search filters, the assembled display tree and its pagination.
// Every navigation bumps a generation counter; fetches that complete after
// the user has moved on apply to nothing.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/menu"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/tree"
)

// loadMoreDebounce suppresses duplicate load-more requests fired by rapid
// scroll events.
const loadMoreDebounce = 500 * time.Millisecond

// keywordPageLimit caps how many upstream pages one search keyword may
// fan out to.
const keywordPageLimit = 20

// autoLoadDelay separates the first page's response from the background
// page loads that follow it.
const autoLoadDelay = 100 * time.Millisecond

// Fetcher is the slice of the repository client the session consumes.
type Fetcher interface {
	ListShells(ctx context.Context, page int, keyword string) (model.Page[model.AssetAdministrationShell], error)
	ListAllShells(ctx context.Context) ([]model.AssetAdministrationShell, error)
	ListSubmodels(ctx context.Context, page int) (model.Page[model.Submodel], int, error)
	ListConceptDescriptions(ctx context.Context, page int, keyword string) (model.Page[model.ConceptDescription], error)
	GetSubmodel(ctx context.Context, id string) (*model.Submodel, error)
	SearchCombined(ctx context.Context, keyword, globalAssetID string, page int) (model.Page[model.AssetAdministrationShell], error)
	SearchGlobalAssetID(ctx context.Context, keyword string, page int) (model.Page[model.AssetAdministrationShell], error)
	SearchRepository(ctx context.Context, filterPath, value string) (model.RepositorySearchResult, error)
	SearchEntities(ctx context.Context, entityType, keyword string, page int) (*model.Envelope, error)
}

// Session is one client's explorer state. All methods are safe for
// concurrent use.
type Session struct {
	id      string
	fetcher Fetcher

	autoLoadPages int
	pageSize      int
	language      string

	mu         sync.Mutex
	generation uint64

	currentMenu menu.Code
	filterType  string
	filterValue string

	treeData    []*tree.Node
	loadError   string
	loading     bool
	loadingMore bool
	page        int
	hasMore     bool

	// unionResults caches the deduplicated multi-keyword search outcome so
	// later pages re-window instead of refetching.
	unionResults []model.AssetAdministrationShell

	selectedID string
	details    map[string]*model.Submodel

	lastLoadMore time.Time
	now          func() time.Time
}

// New creates a session starting on the TIG menu, matching the default
// landing view.
func New(cfg *common.Config, fetcher Fetcher) *Session {
	autoLoadPages := cfg.Explorer.AutoLoadPages
	if autoLoadPages <= 0 {
		autoLoadPages = 10
	}
	pageSize := cfg.Explorer.PageSize
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}
	language := cfg.Explorer.Language
	if language == "" {
		language = "en"
	}
	return &Session{
		id:            uuid.NewString(),
		fetcher:       fetcher,
		autoLoadPages: autoLoadPages,
		pageSize:      pageSize,
		language:      language,
		currentMenu:   menu.TIG,
		hasMore:       true,
		details:       make(map[string]*model.Submodel),
		now:           time.Now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// bump invalidates all in-flight work and returns the new generation.
func (s *Session) bump() uint64 {
	s.generation++
	return s.generation
}

// current reports whether gen is still the live generation.
func (s *Session) current(gen uint64) bool { return s.generation == gen }

// ShowMenu switches to a menu and loads its first page. Remaining pages
// load in the background.
func (s *Session) ShowMenu(ctx context.Context, code menu.Code) error {
	s.mu.Lock()
	if s.currentMenu == code && len(s.treeData) > 0 {
		s.mu.Unlock()
		return nil
	}
	gen := s.bump()
	s.currentMenu = code
	s.selectedID = ""
	if code == menu.All {
		s.filterType = "aas"
	} else {
		s.filterType = ""
	}
	s.filterValue = ""
	s.loadError = ""
	s.treeData = nil
	s.unionResults = nil
	s.page = 1
	s.hasMore = true
	s.loading = true
	s.mu.Unlock()

	err := s.loadMenuPage(ctx, gen, 1)

	s.mu.Lock()
	if s.current(gen) {
		s.loading = false
	}
	autoLoad := s.current(gen) && err == nil && s.hasMore
	s.mu.Unlock()

	if autoLoad {
		go s.autoLoad(gen, s.loadMenuPage)
	}
	return err
}

// ClearSearch drops the active filters and reloads the current menu.
func (s *Session) ClearSearch(ctx context.Context) error {
	s.mu.Lock()
	code := s.currentMenu
	s.filterValue = ""
	s.selectedID = ""
	s.treeData = nil
	s.mu.Unlock()

	return s.ShowMenu(ctx, code)
}

// LoadMore fetches the next page of whatever the session is showing.
// Calls within the debounce window, or while a load is already running,
// are dropped silently.
func (s *Session) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	now := s.now()
	if now.Sub(s.lastLoadMore) < loadMoreDebounce {
		s.mu.Unlock()
		return nil
	}
	s.lastLoadMore = now

	if !s.hasMore || s.loadingMore || s.loading {
		s.mu.Unlock()
		return nil
	}
	gen := s.generation
	next := s.page + 1
	searching := s.searchActive()
	s.loadingMore = true
	s.mu.Unlock()

	var err error
	if searching {
		err = s.loadSearchPage(ctx, gen, next)
	} else {
		err = s.loadMenuPage(ctx, gen, next)
	}

	s.mu.Lock()
	if s.current(gen) {
		s.loadingMore = false
	}
	s.mu.Unlock()
	return err
}

// searchActive reports whether results come from a search rather than a
// menu listing. Callers hold s.mu.
func (s *Session) searchActive() bool {
	if s.filterValue != "" {
		return true
	}
	return s.currentMenu == menu.All && s.filterType != ""
}

// autoLoad fetches pages 2..autoLoadPages in the background until the
// generation moves on or the data runs out.
func (s *Session) autoLoad(gen uint64, loadPage func(context.Context, uint64, int) error) {
	time.Sleep(autoLoadDelay)
	for page := 2; page <= s.autoLoadPages; page++ {
		s.mu.Lock()
		proceed := s.current(gen) && s.hasMore
		s.mu.Unlock()
		if !proceed {
			return
		}
		if err := loadPage(context.Background(), gen, page); err != nil {
			log.Printf("⚠️ Background page %d load failed: %v", page, err)
			return
		}
		s.mu.Lock()
		if s.current(gen) && len(s.treeData) > 0 {
			s.loadError = ""
		}
		s.mu.Unlock()
	}
}

// loadMenuPage loads one page of the current menu's listing.
func (s *Session) loadMenuPage(ctx context.Context, gen uint64, page int) error {
	s.mu.Lock()
	code := s.currentMenu
	s.mu.Unlock()

	if code == menu.All {
		// ALL shows nothing until the user picks a filter.
		return nil
	}

	plan, ok := menu.SearchPlan(code)
	if !ok {
		s.setError(gen, "No API keyword defined for menu: "+string(code))
		return common.NewErrBadRequest("no keyword for menu " + string(code))
	}

	switch plan.Strategy {
	case menu.StrategyCombined, menu.StrategyGlobalAssetID:
		return s.loadUnionPage(ctx, gen, page, plan)
	default:
		return s.loadKeywordPage(ctx, gen, page, plan.Keywords[0])
	}
}

// loadKeywordPage serves menus listed by a single repository keyword.
func (s *Session) loadKeywordPage(ctx context.Context, gen uint64, page int, keyword string) error {
	result, err := s.fetcher.ListShells(ctx, page, keyword)
	if err != nil {
		s.setError(gen, "Failed to load data. Please try again.")
		return err
	}

	shells := make([]model.AssetAdministrationShell, 0, len(result.Items))
	for _, shell := range result.Items {
		if !menu.IsExcluded(shell) {
			shells = append(shells, shell)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(gen) {
		return nil
	}
	if len(shells) == 0 {
		s.hasMore = false
		if page == 1 {
			s.loadError = menu.DisplayName(s.currentMenu) + ": No data in range."
		}
		return nil
	}
	s.appendPage(page, tree.Assemble(shells, nil, "", s.language))
	// The raw page decides whether more exist; menu filtering can shrink a
	// full page below the size heuristic without exhausting the listing.
	s.hasMore = result.HasMore()
	return nil
}

// loadUnionPage serves menus backed by multi-keyword searches. The union
// over all keywords is fetched once, deduplicated by shell id and then
// windowed per display page.
func (s *Session) loadUnionPage(ctx context.Context, gen uint64, page int, plan menu.Plan) error {
	s.mu.Lock()
	union := s.unionResults
	s.mu.Unlock()

	if union == nil {
		fetched, err := s.fetchUnion(ctx, plan)
		if err != nil {
			s.setError(gen, "Failed to load data. Please try again.")
			return err
		}
		union = fetched
		s.mu.Lock()
		if s.current(gen) {
			s.unionResults = union
		}
		s.mu.Unlock()
	}

	start := (page - 1) * s.pageSize
	end := start + s.pageSize
	if start > len(union) {
		start = len(union)
	}
	if end > len(union) {
		end = len(union)
	}
	window := union[start:end]

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(gen) {
		return nil
	}
	if len(window) > 0 {
		s.appendPage(page, tree.Assemble(window, nil, "", s.language))
	}
	s.hasMore = end < len(union)
	return nil
}

// fetchUnion collects every page of every keyword search, dropping
// duplicate shells. A failing keyword contributes nothing; the remaining
// keywords still count.
func (s *Session) fetchUnion(ctx context.Context, plan menu.Plan) ([]model.AssetAdministrationShell, error) {
	results := []model.AssetAdministrationShell{}
	seen := make(map[string]bool)

	for _, keyword := range plan.Keywords {
		for page := 1; page <= keywordPageLimit; page++ {
			var result model.Page[model.AssetAdministrationShell]
			var err error
			if plan.Strategy == menu.StrategyCombined {
				result, err = s.fetcher.SearchCombined(ctx, keyword, plan.GlobalAssetID, page)
			} else {
				result, err = s.fetcher.SearchGlobalAssetID(ctx, keyword, page)
			}
			if err != nil {
				log.Printf("⚠️ Keyword %q page %d failed: %v", keyword, page, err)
				break
			}
			if len(result.Items) == 0 {
				break
			}
			for _, shell := range result.Items {
				if shell.ID == "" || seen[shell.ID] {
					continue
				}
				seen[shell.ID] = true
				results = append(results, shell)
			}
			if !result.HasMore() {
				break
			}
		}
	}
	return results, nil
}

// appendPage merges one page of nodes into the tree. Page 1 replaces;
// later pages append. Callers hold s.mu.
func (s *Session) appendPage(page int, nodes []*tree.Node) {
	if page == 1 {
		s.treeData = nodes
	} else {
		s.treeData = append(s.treeData, nodes...)
	}
	s.page = page
}

// setError records a user-facing error unless the generation moved on.
// Only the first page surfaces errors; background pages fail quietly.
func (s *Session) setError(gen uint64, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current(gen) && s.page <= 1 {
		s.loadError = message
	}
}
