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

// Package api binds the explorer's HTTP surface to the session layer. Node
// and session identifiers travel base64url-encoded in paths because AAS
// identifiers are URLs themselves.
package api

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/menu"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/session"
)

const componentName = "EXPLORER"

// ExplorerAPIController binds HTTP requests to the session manager and
// writes the resulting session state to the response.
type ExplorerAPIController struct {
	manager *session.Manager
	json    jsoniter.API
}

// NewExplorerAPIController creates the controller.
func NewExplorerAPIController(manager *session.Manager) *ExplorerAPIController {
	return &ExplorerAPIController{
		manager: manager,
		json:    jsoniter.ConfigCompatibleWithStandardLibrary,
	}
}

// Routes registers every explorer endpoint on the router.
func (c *ExplorerAPIController) Routes(r chi.Router) {
	r.Get("/menus", c.GetMenus)
	r.Get("/statistics", c.GetStatistics)

	r.Post("/sessions", c.CreateSession)
	r.Route("/sessions/{sessionId}", func(r chi.Router) {
		r.Delete("/", c.DeleteSession)
		r.Get("/state", c.GetState)
		r.Post("/menus/{menuCode}", c.ShowMenu)
		r.Post("/search", c.Search)
		r.Post("/search/clear", c.ClearSearch)
		r.Post("/load-more", c.LoadMore)
		r.Post("/nodes/{nodeId}/toggle", c.ToggleNode)
		r.Post("/nodes/{nodeId}/select", c.SelectNode)
	})
}

// MenuEntry is one selectable menu in the catalog response.
type MenuEntry struct {
	Code          string              `json:"code"`
	DisplayName   string              `json:"displayName"`
	FilterOptions []menu.FilterOption `json:"filterOptions,omitempty"`
}

// MenuCatalog groups the menus the way the navigation presents them.
type MenuCatalog struct {
	Equipment  []MenuEntry `json:"equipment"`
	Material   []MenuEntry `json:"material"`
	Process    []MenuEntry `json:"process"`
	Operation  []MenuEntry `json:"operation"`
	Quality    []MenuEntry `json:"quality"`
	Production []MenuEntry `json:"production"`
	Special    []MenuEntry `json:"special"`
}

func menuEntries(codes []menu.Code) []MenuEntry {
	entries := make([]MenuEntry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, MenuEntry{
			Code:          string(code),
			DisplayName:   menu.DisplayName(code),
			FilterOptions: menu.FilterOptions(code),
		})
	}
	return entries
}

// GetMenus - Returns the menu catalog in navigation order
func (c *ExplorerAPIController) GetMenus(w http.ResponseWriter, _ *http.Request) {
	catalog := MenuCatalog{
		Equipment:  menuEntries(menu.EquipmentMenus),
		Material:   menuEntries(menu.MaterialMenus),
		Process:    menuEntries(menu.ProcessMenus),
		Operation:  menuEntries(menu.OperationMenus),
		Quality:    menuEntries(menu.QualityMenus),
		Production: menuEntries(menu.ProductionMenus),
		Special:    menuEntries([]menu.Code{menu.All}),
	}
	c.writeJSON(w, http.StatusOK, catalog)
}

// GetStatistics - Returns per-menu shell counts for the dashboard
func (c *ExplorerAPIController) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := c.manager.Statistics(r.Context())
	if err != nil {
		log.Printf("🧩 [%s] Error in GetStatistics: %v", componentName, err)
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, stats)
}

// CreateSession - Opens a new explorer session on its default menu
func (c *ExplorerAPIController) CreateSession(w http.ResponseWriter, _ *http.Request) {
	s := c.manager.Create()
	c.writeJSON(w, http.StatusCreated, s.Snapshot())
}

// DeleteSession - Discards a session
func (c *ExplorerAPIController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionId")
	if c.manager.Get(id) == nil {
		c.writeError(w, common.NewErrNotFound(id))
		return
	}
	c.manager.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// GetState - Returns the session's current state snapshot
func (c *ExplorerAPIController) GetState(w http.ResponseWriter, r *http.Request) {
	s, ok := c.session(w, r)
	if !ok {
		return
	}
	c.writeJSON(w, http.StatusOK, s.Snapshot())
}

// ShowMenu - Switches the session to a menu and loads its first page
func (c *ExplorerAPIController) ShowMenu(w http.ResponseWriter, r *http.Request) {
	s, ok := c.session(w, r)
	if !ok {
		return
	}
	code := menu.Code(chi.URLParam(r, "menuCode"))
	if err := s.ShowMenu(r.Context(), code); err != nil {
		log.Printf("🧩 [%s] Error in ShowMenu %q: %v", componentName, code, err)
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, s.Snapshot())
}

// SearchRequest is the body of a search call.
type SearchRequest struct {
	FilterType  string `json:"filterType"`
	FilterValue string `json:"filterValue"`
}

// Search - Applies a filter to the session and loads the first result page
func (c *ExplorerAPIController) Search(w http.ResponseWriter, r *http.Request) {
	s, ok := c.session(w, r)
	if !ok {
		return
	}
	var req SearchRequest
	if err := c.json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, common.NewErrBadRequest("invalid search request body"))
		return
	}
	if err := s.Search(r.Context(), req.FilterType, req.FilterValue); err != nil {
		log.Printf("🧩 [%s] Error in Search type=%q: %v", componentName, req.FilterType, err)
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, s.Snapshot())
}

// ClearSearch - Drops the active filters and reloads the current menu
func (c *ExplorerAPIController) ClearSearch(w http.ResponseWriter, r *http.Request) {
	s, ok := c.session(w, r)
	if !ok {
		return
	}
	if err := s.ClearSearch(r.Context()); err != nil {
		log.Printf("🧩 [%s] Error in ClearSearch: %v", componentName, err)
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, s.Snapshot())
}

// LoadMore - Loads the next result page
func (c *ExplorerAPIController) LoadMore(w http.ResponseWriter, r *http.Request) {
	s, ok := c.session(w, r)
	if !ok {
		return
	}
	if err := s.LoadMore(r.Context()); err != nil {
		log.Printf("🧩 [%s] Error in LoadMore: %v", componentName, err)
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, s.Snapshot())
}

// ToggleNode - Expands or collapses a tree node
func (c *ExplorerAPIController) ToggleNode(w http.ResponseWriter, r *http.Request) {
	s, ok := c.session(w, r)
	if !ok {
		return
	}
	nodeID, ok := c.nodeID(w, r)
	if !ok {
		return
	}
	if err := s.Toggle(r.Context(), nodeID); err != nil {
		log.Printf("🧩 [%s] Error in ToggleNode %q: %v", componentName, nodeID, err)
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, s.Snapshot())
}

// SelectNode - Marks a tree node as the current selection
func (c *ExplorerAPIController) SelectNode(w http.ResponseWriter, r *http.Request) {
	s, ok := c.session(w, r)
	if !ok {
		return
	}
	nodeID, ok := c.nodeID(w, r)
	if !ok {
		return
	}
	if err := s.Select(r.Context(), nodeID); err != nil {
		log.Printf("🧩 [%s] Error in SelectNode %q: %v", componentName, nodeID, err)
		c.writeError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, s.Snapshot())
}

// session resolves the session addressed by the request, answering 404 when
// it does not exist.
func (c *ExplorerAPIController) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "sessionId")
	s := c.manager.Get(id)
	if s == nil {
		c.writeError(w, common.NewErrNotFound(id))
		return nil, false
	}
	return s, true
}

// nodeID decodes the base64url node identifier from the path.
func (c *ExplorerAPIController) nodeID(w http.ResponseWriter, r *http.Request) (string, bool) {
	encoded := chi.URLParam(r, "nodeId")
	nodeID, err := common.DecodeString(encoded)
	if err != nil {
		c.writeError(w, common.NewErrBadRequest("invalid node id encoding"))
		return "", false
	}
	return nodeID, true
}

func (c *ExplorerAPIController) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	if err := c.json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("🧩 [%s] Failed to encode response: %v", componentName, err)
	}
}

func (c *ExplorerAPIController) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case common.IsErrNotFound(err):
		status = http.StatusNotFound
	case common.IsErrBadRequest(err):
		status = http.StatusBadRequest
	case common.IsErrUpstream(err):
		status = http.StatusBadGateway
	}
	body := common.NewErrorHandler("Exception", err, http.StatusText(status), "",
		time.Now().UTC().Format(time.RFC3339))
	c.writeJSON(w, status, body)
}
