package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/menu"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/tree"
)

// fakeFetcher implements Fetcher with overridable behaviour per call.
type fakeFetcher struct {
	listShells          func(page int, keyword string) (model.Page[model.AssetAdministrationShell], error)
	listAllShells       func() ([]model.AssetAdministrationShell, error)
	listSubmodels       func(page int) (model.Page[model.Submodel], int, error)
	listConcepts        func(page int, keyword string) (model.Page[model.ConceptDescription], error)
	getSubmodel         func(id string) (*model.Submodel, error)
	searchCombined      func(keyword, globalAssetID string, page int) (model.Page[model.AssetAdministrationShell], error)
	searchGlobalAssetID func(keyword string, page int) (model.Page[model.AssetAdministrationShell], error)
	searchRepository    func(filterPath, value string) (model.RepositorySearchResult, error)
	searchEntities      func(entityType, keyword string, page int) (*model.Envelope, error)
}

func (f *fakeFetcher) ListShells(_ context.Context, page int, keyword string) (model.Page[model.AssetAdministrationShell], error) {
	if f.listShells == nil {
		return model.Page[model.AssetAdministrationShell]{}, nil
	}
	return f.listShells(page, keyword)
}

func (f *fakeFetcher) ListAllShells(context.Context) ([]model.AssetAdministrationShell, error) {
	if f.listAllShells == nil {
		return nil, nil
	}
	return f.listAllShells()
}

func (f *fakeFetcher) ListSubmodels(_ context.Context, page int) (model.Page[model.Submodel], int, error) {
	if f.listSubmodels == nil {
		return model.Page[model.Submodel]{}, 0, nil
	}
	return f.listSubmodels(page)
}

func (f *fakeFetcher) ListConceptDescriptions(_ context.Context, page int, keyword string) (model.Page[model.ConceptDescription], error) {
	if f.listConcepts == nil {
		return model.Page[model.ConceptDescription]{}, nil
	}
	return f.listConcepts(page, keyword)
}

func (f *fakeFetcher) GetSubmodel(_ context.Context, id string) (*model.Submodel, error) {
	if f.getSubmodel == nil {
		return nil, common.NewErrNotFound(id)
	}
	return f.getSubmodel(id)
}

func (f *fakeFetcher) SearchCombined(_ context.Context, keyword, globalAssetID string, page int) (model.Page[model.AssetAdministrationShell], error) {
	if f.searchCombined == nil {
		return model.Page[model.AssetAdministrationShell]{}, nil
	}
	return f.searchCombined(keyword, globalAssetID, page)
}

func (f *fakeFetcher) SearchGlobalAssetID(_ context.Context, keyword string, page int) (model.Page[model.AssetAdministrationShell], error) {
	if f.searchGlobalAssetID == nil {
		return model.Page[model.AssetAdministrationShell]{}, nil
	}
	return f.searchGlobalAssetID(keyword, page)
}

func (f *fakeFetcher) SearchRepository(_ context.Context, filterPath, value string) (model.RepositorySearchResult, error) {
	if f.searchRepository == nil {
		return model.RepositorySearchResult{}, nil
	}
	return f.searchRepository(filterPath, value)
}

func (f *fakeFetcher) SearchEntities(_ context.Context, entityType, keyword string, page int) (*model.Envelope, error) {
	if f.searchEntities == nil {
		return &model.Envelope{}, nil
	}
	return f.searchEntities(entityType, keyword, page)
}

func testConfig() *common.Config {
	cfg := &common.Config{}
	cfg.Explorer.AutoLoadPages = 10
	cfg.Explorer.PageSize = 10
	cfg.Explorer.Language = "en"
	return cfg
}

func shellPage(ids ...string) model.Page[model.AssetAdministrationShell] {
	page := model.Page[model.AssetAdministrationShell]{}
	for _, id := range ids {
		page.Items = append(page.Items, model.AssetAdministrationShell{ID: id, IdShort: "CO2Type"})
	}
	return page
}

func idRange(prefix string, from, to int) []string {
	var ids []string
	for i := from; i <= to; i++ {
		ids = append(ids, fmt.Sprintf("%s-%d", prefix, i))
	}
	return ids
}

func TestShowMenuUnionSearchDeduplicatesAndWindows(t *testing.T) {
	// First keyword delivers 24 shells over three pages (10+10+4); the
	// other keywords redeliver subsets of the same shells.
	fetcher := &fakeFetcher{
		searchCombined: func(keyword, globalAssetID string, page int) (model.Page[model.AssetAdministrationShell], error) {
			assert.Equal(t, "WeldingProcess", globalAssetID)
			if keyword == "CO2Type-classify" {
				switch page {
				case 1:
					return shellPage(idRange("aas", 1, 10)...), nil
				case 2:
					return shellPage(idRange("aas", 11, 20)...), nil
				case 3:
					return shellPage(idRange("aas", 21, 24)...), nil
				}
				return shellPage(), nil
			}
			// Duplicates only.
			if page == 1 {
				return shellPage("aas-1", "aas-2"), nil
			}
			return shellPage(), nil
		},
	}

	s := New(testConfig(), fetcher)
	require.NoError(t, s.ShowMenu(context.Background(), menu.CO2))

	// Page 1 is synchronous: exactly one display window.
	state := s.Snapshot()
	assert.Len(t, state.Tree, 10)
	assert.True(t, state.HasMore)
	assert.Empty(t, state.Error)

	// Background loading fills in the remaining pages.
	assert.Eventually(t, func() bool {
		return len(s.Snapshot().Tree) == 24
	}, 2*time.Second, 10*time.Millisecond, "auto-load must deliver all 24 unique shells")

	state = s.Snapshot()
	assert.False(t, state.HasMore)
	ids := make(map[string]bool)
	for _, node := range state.Tree {
		assert.False(t, ids[node.ID], "duplicate node %s", node.ID)
		ids[node.ID] = true
	}
}

func TestShowMenuKeywordListing(t *testing.T) {
	fetcher := &fakeFetcher{
		listShells: func(page int, keyword string) (model.Page[model.AssetAdministrationShell], error) {
			assert.Equal(t, "Steel", keyword)
			if page == 1 {
				return model.Page[model.AssetAdministrationShell]{Items: []model.AssetAdministrationShell{
					{ID: "aas-steel", IdShort: "SteelPlate"},
					{ID: "aas-aux", IdShort: "Component"},
				}}, nil
			}
			return model.Page[model.AssetAdministrationShell]{}, nil
		},
	}

	s := New(testConfig(), fetcher)
	require.NoError(t, s.ShowMenu(context.Background(), menu.Steel))

	assert.Eventually(t, func() bool {
		return !s.Snapshot().HasMore
	}, 2*time.Second, 10*time.Millisecond)

	state := s.Snapshot()
	require.Len(t, state.Tree, 1, "auxiliary Component shell is filtered out")
	assert.Equal(t, "aas-steel", state.Tree[0].ID)
}

func TestShowMenuAllIsEmptyUntilFiltered(t *testing.T) {
	s := New(testConfig(), &fakeFetcher{})
	require.NoError(t, s.ShowMenu(context.Background(), menu.All))

	state := s.Snapshot()
	assert.Empty(t, state.Tree)
	assert.Equal(t, "aas", state.FilterType, "ALL defaults to the AAS entity filter")
}

func TestStaleMenuPageIsDropped(t *testing.T) {
	s := New(testConfig(), &fakeFetcher{
		listShells: func(int, string) (model.Page[model.AssetAdministrationShell], error) {
			return shellPage("aas-old"), nil
		},
	})

	s.mu.Lock()
	s.currentMenu = menu.Steel
	staleGen := s.generation
	s.bump()
	s.mu.Unlock()

	require.NoError(t, s.loadMenuPage(context.Background(), staleGen, 1))
	assert.Empty(t, s.Snapshot().Tree, "results for an old generation must not land")
}

func TestSearchSubmodelEntities(t *testing.T) {
	fetcher := &fakeFetcher{
		searchEntities: func(entityType, keyword string, page int) (*model.Envelope, error) {
			assert.Equal(t, "submodel", entityType)
			if page > 1 {
				return &model.Envelope{Message: []byte(`[]`)}, nil
			}
			return &model.Envelope{Message: []byte(`[
				{"id": "https://example.org/ids/sm/CO2Type/180SL7/AlarmData/1/0/", "idShort": "AlarmData"}
			]`)}, nil
		},
	}

	s := New(testConfig(), fetcher)
	require.NoError(t, s.ShowMenu(context.Background(), menu.All))
	require.NoError(t, s.Search(context.Background(), "submodel", "180SL7"))

	state := s.Snapshot()
	require.Len(t, state.Tree, 1)
	assert.Equal(t, tree.NodeSubmodel, state.Tree[0].Type)
	assert.Equal(t, "AlarmData (180SL7)", state.Tree[0].Name)
	assert.False(t, state.HasMore)
}

func TestSearchRequiresKeywordForNonShellEntities(t *testing.T) {
	s := New(testConfig(), &fakeFetcher{})
	require.NoError(t, s.ShowMenu(context.Background(), menu.All))

	err := s.Search(context.Background(), "conceptdescription", "   ")
	require.Error(t, err)
	assert.True(t, common.IsErrBadRequest(err))
	assert.Equal(t, "Please enter search keyword", s.Snapshot().Error)
}

func TestSearchConceptLowercaseRetry(t *testing.T) {
	var keywords []string
	fetcher := &fakeFetcher{
		searchEntities: func(entityType, keyword string, page int) (*model.Envelope, error) {
			keywords = append(keywords, keyword)
			if keyword == "homepage" {
				return &model.Envelope{Message: []byte(`[{"id": "urn:cd:homepage", "idShort": "Homepage"}]`)}, nil
			}
			return &model.Envelope{Message: []byte(`[]`)}, nil
		},
	}

	s := New(testConfig(), fetcher)
	require.NoError(t, s.ShowMenu(context.Background(), menu.All))
	require.NoError(t, s.Search(context.Background(), "conceptdescription", "HomePage"))

	assert.Equal(t, []string{"HomePage", "homepage"}, keywords)
	state := s.Snapshot()
	require.Len(t, state.Tree, 1)
	assert.Equal(t, tree.NodeConcept, state.Tree[0].Type)
}

func TestAttributeSearchFiltersToMenuAndDoesNotPage(t *testing.T) {
	fetcher := &fakeFetcher{
		searchRepository: func(filterPath, value string) (model.RepositorySearchResult, error) {
			assert.Equal(t, "welding/search/inputpowervoltage", filterPath)
			assert.Equal(t, "380", value)
			return model.RepositorySearchResult{
				Shells: []model.AssetAdministrationShell{
					{ID: "aas-co2", IdShort: "CO2Type"},
					{ID: "aas-robot", IdShort: "HH4"},
				},
				Submodels: []model.Submodel{{ID: "sm-1", IdShort: "TechnicalData"}},
			}, nil
		},
	}

	s := New(testConfig(), fetcher)
	s.mu.Lock()
	s.currentMenu = menu.CO2
	s.mu.Unlock()

	require.NoError(t, s.Search(context.Background(), "welding/search/inputpowervoltage", "380"))

	state := s.Snapshot()
	require.Len(t, state.Tree, 1, "robot shell does not belong to the CO2 menu")
	assert.Equal(t, "aas-co2", state.Tree[0].ID)
	assert.False(t, state.HasMore)
}

func TestSelectKeepsSearchResultAnnotations(t *testing.T) {
	fetcher := &fakeFetcher{
		searchRepository: func(filterPath, value string) (model.RepositorySearchResult, error) {
			return model.RepositorySearchResult{
				Shells: []model.AssetAdministrationShell{{
					ID:        "aas-co2",
					IdShort:   "CO2Type",
					Submodels: []model.Reference{{Keys: []model.Key{{Type: "Submodel", Value: "sm-1"}}}},
				}},
				Submodels: []model.Submodel{{
					ID:      "sm-1",
					IdShort: "TechnicalData",
					SubmodelElements: []model.SubmodelElement{
						&model.Property{IdShort: "InputPowervoltage", ModelType: "Property", Value: "380"},
					},
				}},
			}, nil
		},
		getSubmodel: func(id string) (*model.Submodel, error) {
			t.Fatalf("submodel %s must not be refetched after a search", id)
			return nil, nil
		},
	}

	s := New(testConfig(), fetcher)
	s.mu.Lock()
	s.currentMenu = menu.CO2
	s.mu.Unlock()

	require.NoError(t, s.Search(context.Background(), "welding/search/inputpowervoltage", "380"))

	state := s.Snapshot()
	node := tree.FindNode(state.Tree, "sm-1")
	require.NotNil(t, node)
	require.True(t, node.Matched)
	require.Len(t, node.Children, 1)
	assert.True(t, node.Children[0].Matched)

	// Selecting the result reads the body already carried on the node; a
	// refetch would rebuild its children without the match marks.
	require.NoError(t, s.Select(context.Background(), "sm-1"))

	state = s.Snapshot()
	node = tree.FindNode(state.Tree, "sm-1")
	require.NotNil(t, node)
	assert.True(t, node.Matched)
	require.Len(t, node.Children, 1)
	assert.True(t, node.Children[0].Matched)
	detail, ok := state.SelectedDetail.(*model.Submodel)
	require.True(t, ok)
	assert.Equal(t, "TechnicalData", detail.IdShort)
}

func TestKeywordListingStopsAtExplicitLastFlag(t *testing.T) {
	var calls int
	fetcher := &fakeFetcher{
		listShells: func(page int, _ string) (model.Page[model.AssetAdministrationShell], error) {
			calls++
			require.Equal(t, 1, page, "a page marked last must not trigger a successor fetch")
			page1 := shellPage(idRange("aas", 1, 10)...)
			page1.HasLast = true
			page1.Last = true
			return page1, nil
		},
	}

	s := New(testConfig(), fetcher)
	require.NoError(t, s.ShowMenu(context.Background(), menu.Steel))

	state := s.Snapshot()
	assert.Len(t, state.Tree, 10)
	assert.False(t, state.HasMore, "full page still carried an explicit last flag")
	assert.Equal(t, 1, calls)
}

func TestToggleLazyLoadsSubmodel(t *testing.T) {
	fetcher := &fakeFetcher{
		listShells: func(page int, _ string) (model.Page[model.AssetAdministrationShell], error) {
			if page > 1 {
				return model.Page[model.AssetAdministrationShell]{}, nil
			}
			return model.Page[model.AssetAdministrationShell]{Items: []model.AssetAdministrationShell{{
				ID:      "aas-1",
				IdShort: "SteelPlate",
				Submodels: []model.Reference{
					{Keys: []model.Key{{Type: "Submodel", Value: "sm-1"}}},
				},
			}}}, nil
		},
		getSubmodel: func(id string) (*model.Submodel, error) {
			require.Equal(t, "sm-1", id)
			return &model.Submodel{
				ID:      "sm-1",
				IdShort: "TechnicalData",
				SubmodelElements: []model.SubmodelElement{
					&model.Property{IdShort: "RatedFrequency", ModelType: "Property", Value: "60"},
				},
			}, nil
		},
	}

	s := New(testConfig(), fetcher)
	require.NoError(t, s.ShowMenu(context.Background(), menu.Steel))
	require.NoError(t, s.Toggle(context.Background(), "sm-1"))

	state := s.Snapshot()
	node := tree.FindNode(state.Tree, "sm-1")
	require.NotNil(t, node)
	assert.True(t, node.Expanded)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "sm-1_RatedFrequency", node.Children[0].ID)
	assert.Equal(t, "RatedFrequency: 60 Hz", node.Children[0].Name)
}

func TestToggleFetchFailureLeavesErrorSentinel(t *testing.T) {
	fetcher := &fakeFetcher{
		listShells: func(page int, _ string) (model.Page[model.AssetAdministrationShell], error) {
			if page > 1 {
				return model.Page[model.AssetAdministrationShell]{}, nil
			}
			return model.Page[model.AssetAdministrationShell]{Items: []model.AssetAdministrationShell{{
				ID:        "aas-1",
				IdShort:   "SteelPlate",
				Submodels: []model.Reference{{Keys: []model.Key{{Type: "Submodel", Value: "sm-broken"}}}},
			}}}, nil
		},
		getSubmodel: func(id string) (*model.Submodel, error) {
			return nil, common.NewErrUpstream("boom")
		},
	}

	s := New(testConfig(), fetcher)
	require.NoError(t, s.ShowMenu(context.Background(), menu.Steel))
	require.Error(t, s.Toggle(context.Background(), "sm-broken"))

	node := tree.FindNode(s.Snapshot().Tree, "sm-broken")
	require.NotNil(t, node)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "error", node.Children[0].ID)
	assert.Equal(t, "Failed to load data", node.Children[0].Name)
}

func TestSelectFetchesDetailOnce(t *testing.T) {
	var fetches int
	fetcher := &fakeFetcher{
		listShells: func(page int, _ string) (model.Page[model.AssetAdministrationShell], error) {
			if page > 1 {
				return model.Page[model.AssetAdministrationShell]{}, nil
			}
			return model.Page[model.AssetAdministrationShell]{Items: []model.AssetAdministrationShell{{
				ID:        "aas-1",
				IdShort:   "SteelPlate",
				Submodels: []model.Reference{{Keys: []model.Key{{Type: "Submodel", Value: "sm-1"}}}},
			}}}, nil
		},
		getSubmodel: func(id string) (*model.Submodel, error) {
			fetches++
			return &model.Submodel{ID: "sm-1", IdShort: "Nameplate"}, nil
		},
	}

	s := New(testConfig(), fetcher)
	require.NoError(t, s.ShowMenu(context.Background(), menu.Steel))

	require.NoError(t, s.Select(context.Background(), "sm-1"))
	require.NoError(t, s.Select(context.Background(), "sm-1"))

	assert.Equal(t, 1, fetches)
	state := s.Snapshot()
	assert.Equal(t, "sm-1", state.SelectedID)
	detail, ok := state.SelectedDetail.(*model.Submodel)
	require.True(t, ok)
	assert.Equal(t, "Nameplate", detail.IdShort)
	assert.True(t, tree.FindNode(state.Tree, "sm-1").Selected)
}

func TestLoadMoreDebounce(t *testing.T) {
	var calls int
	fetcher := &fakeFetcher{
		listShells: func(page int, _ string) (model.Page[model.AssetAdministrationShell], error) {
			calls++
			return shellPage(idRange("aas", page*100, page*100+9)...), nil
		},
	}

	cfg := testConfig()
	cfg.Explorer.AutoLoadPages = 1 // keep the background loader out of the way
	s := New(cfg, fetcher)
	require.NoError(t, s.ShowMenu(context.Background(), menu.Steel))
	callsAfterFirstPage := calls

	clock := time.Now()
	s.now = func() time.Time { return clock }

	require.NoError(t, s.LoadMore(context.Background()))
	require.NoError(t, s.LoadMore(context.Background())) // within debounce window
	assert.Equal(t, callsAfterFirstPage+1, calls)

	clock = clock.Add(time.Second)
	require.NoError(t, s.LoadMore(context.Background()))
	assert.Equal(t, callsAfterFirstPage+2, calls)
}

func TestClearSearchRestoresMenuListing(t *testing.T) {
	fetcher := &fakeFetcher{
		listShells: func(page int, keyword string) (model.Page[model.AssetAdministrationShell], error) {
			if page > 1 {
				return model.Page[model.AssetAdministrationShell]{}, nil
			}
			return shellPage("aas-1"), nil
		},
		searchRepository: func(string, string) (model.RepositorySearchResult, error) {
			return model.RepositorySearchResult{}, nil
		},
	}

	s := New(testConfig(), fetcher)
	require.NoError(t, s.ShowMenu(context.Background(), menu.Steel))
	require.NoError(t, s.Search(context.Background(), "materialgrade", "S45C"))
	require.NoError(t, s.ClearSearch(context.Background()))

	state := s.Snapshot()
	assert.Empty(t, state.FilterValue)
	assert.Len(t, state.Tree, 1)
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(testConfig(), &fakeFetcher{})

	s := m.Create()
	require.NotEmpty(t, s.ID())
	assert.Equal(t, 1, m.Count())
	assert.Same(t, s, m.Get(s.ID()))

	other := m.Create()
	assert.NotEqual(t, s.ID(), other.ID())
	assert.Equal(t, 2, m.Count())

	m.Delete(s.ID())
	assert.Nil(t, m.Get(s.ID()))
	assert.Equal(t, 1, m.Count())
}

func TestStatistics(t *testing.T) {
	fetcher := &fakeFetcher{
		listAllShells: func() ([]model.AssetAdministrationShell, error) {
			return []model.AssetAdministrationShell{
				{ID: "urn:aas:1", IdShort: "CO2Type"},
				{ID: "urn:aas:2", IdShort: "CO2Type"},
				{ID: "urn:aas:3", IdShort: "HH4"},
				{ID: "urn:aas:4", IdShort: "Component"},
			}, nil
		},
		listSubmodels: func(page int) (model.Page[model.Submodel], int, error) {
			require.Equal(t, 1, page)
			return model.Page[model.Submodel]{Items: []model.Submodel{{ID: "sm-1"}}}, 12, nil
		},
		listConcepts: func(page int, keyword string) (model.Page[model.ConceptDescription], error) {
			require.Equal(t, 1, page)
			assert.Empty(t, keyword)
			return model.Page[model.ConceptDescription]{TotalElements: 7}, nil
		},
	}

	s := New(testConfig(), fetcher)
	stats, err := s.Statistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Counts["CO2"])
	assert.Equal(t, 1, stats.Counts["Robot"])
	assert.Equal(t, 12, stats.TotalSubmodels)
	assert.Equal(t, 7, stats.TotalConcepts)
	assert.NotEmpty(t, stats.Menus)
}

func TestStatisticsToleratesCountFailures(t *testing.T) {
	fetcher := &fakeFetcher{
		listAllShells: func() ([]model.AssetAdministrationShell, error) {
			return []model.AssetAdministrationShell{{ID: "urn:aas:1", IdShort: "CO2Type"}}, nil
		},
		listSubmodels: func(int) (model.Page[model.Submodel], int, error) {
			return model.Page[model.Submodel]{}, 0, common.NewErrUpstream("submodels down")
		},
		listConcepts: func(int, string) (model.Page[model.ConceptDescription], error) {
			return model.Page[model.ConceptDescription]{}, common.NewErrUpstream("concepts down")
		},
	}

	s := New(testConfig(), fetcher)
	stats, err := s.Statistics(context.Background())
	require.NoError(t, err, "failing entity counts must not fail the dashboard")

	assert.Equal(t, 1, stats.Total)
	assert.Zero(t, stats.TotalSubmodels)
	assert.Zero(t, stats.TotalConcepts)
}
