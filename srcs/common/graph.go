// Copyright 2019 The Staticdep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file
//
// Author: Olivier Roques <olivier@oroques.dev>

package common

import (
	"github.com/awalterschulze/gographviz"
)

// Default attributes of graph nodes
var nodeAttrs = map[string]string{
	"color":    "lightblue",
	"style":    "filled",
	"fontname": "Helvetica",
}

// GenerateGraph generates a dot file which represents the given dependency
// map as a directed graph. An optional label map can be used to override the
// displayed name of particular nodes.
func GenerateGraph(graphName, fullPathName string, data map[string][]string,
	mapLabel map[string]string) {

	graph := gographviz.NewEscape()

	if err := graph.SetName(graphName); err != nil {
		PrintWarning(err)
	}
	if err := graph.SetDir(true); err != nil {
		PrintWarning(err)
	}

	// Add a node per map entry and an edge per dependency
	for node, children := range data {
		addNode(graph, graphName, node, mapLabel)
		for _, child := range children {
			addNode(graph, graphName, child, mapLabel)
			if err := graph.AddEdge(node, child, true, nil); err != nil {
				PrintWarning(err)
			}
		}
	}

	// Save the graph as a dot file
	if err := WriteToFile(fullPathName+".dot", []byte(graph.String())); err != nil {
		PrintWarning(err)
	} else {
		PrintOk("Graph saved into " + fullPathName + ".dot")
	}
}

// addNode adds a single node with its attributes to the graph.
func addNode(graph *gographviz.Escape, graphName, node string,
	mapLabel map[string]string) {

	attrs := make(map[string]string, len(nodeAttrs)+1)
	for key, value := range nodeAttrs {
		attrs[key] = value
	}
	if label, ok := mapLabel[node]; ok {
		attrs["label"] = label
	}

	if err := graph.AddNode(graphName, node, attrs); err != nil {
		PrintWarning(err)
	}
}
