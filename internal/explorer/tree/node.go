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

// Package tree assembles display trees from AAS repository content:
// equipment nodes on top, submodel nodes beneath them, and recursively
// decoded submodel elements as leaves. Trees are treated as immutable;
// mutations return a rebuilt tree.
package tree

// NodeType classifies a display node.
type NodeType string

const (
	NodeEquipment             NodeType = "equipment"
	NodeSubmodel              NodeType = "submodel"
	NodeConcept               NodeType = "concept"
	NodeCollection            NodeType = "collection"
	NodeProperty              NodeType = "property"
	NodeMultiLanguageProperty NodeType = "multilanguageproperty"
	NodeFile                  NodeType = "file"
	NodeReference             NodeType = "reference"
	NodeRange                 NodeType = "range"
	NodeBlob                  NodeType = "blob"
	NodeElement               NodeType = "element"
	NodePlaceholder           NodeType = "placeholder"
)

// Node is one entry of the display tree. Data carries the source payload
// the node was built from (shell, submodel, element or concept) so the
// detail view can show any selected node without another fetch; submodel
// nodes created from a lazy reference carry nil until their body arrives.
type Node struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Type     NodeType `json:"type"`
	Parent   string   `json:"parent,omitempty"`
	Expanded bool     `json:"expanded"`
	Selected bool     `json:"selected,omitempty"`
	HasValue bool     `json:"hasValue,omitempty"`
	Matched  bool     `json:"isMatched,omitempty"`
	Data     any      `json:"data,omitempty"`
	Children []*Node  `json:"children"`
}

// Placeholder returns the lazy-loading stand-in child of a collapsed
// submodel node. Its presence signals the session to fetch the submodel
// body on first expansion.
func Placeholder(submodelID string) *Node {
	return &Node{ID: submodelID + "_placeholder", Type: NodePlaceholder}
}

// LoadingNode is shown under a submodel node while its body is fetched.
func LoadingNode() *Node {
	return &Node{ID: "loading", Name: "Loading...", Type: NodePlaceholder}
}

// ErrorNode is shown under a submodel node whose body could not be fetched.
func ErrorNode() *Node {
	return &Node{ID: "error", Name: "Failed to load data", Type: NodeElement}
}

// elementNodeTypes maps AAS modelType discriminators to node types.
// Anything unmapped renders as a plain element.
var elementNodeTypes = map[string]NodeType{
	"SubmodelElementCollection": NodeCollection,
	"Property":                  NodeProperty,
	"MultiLanguageProperty":     NodeMultiLanguageProperty,
	"File":                      NodeFile,
	"ReferenceElement":          NodeReference,
	"Range":                     NodeRange,
	"Blob":                      NodeBlob,
}

func nodeTypeFor(modelType string) NodeType {
	if t, ok := elementNodeTypes[modelType]; ok {
		return t
	}
	return NodeElement
}
