// File: pkg/listing/tree.go
package listing

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// RenderTree renders the collected relative paths as a directory tree rooted
// at root. Directories sort before files, both case-insensitively.
func RenderTree(root string, paths []string) string {
	top := newTreeNode("", true)
	for _, p := range paths {
		parts := strings.Split(filepath.ToSlash(p), "/")
		top.insert(parts)
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(root + "/\n")
	top.render(&treeBuilder, "")
	return treeBuilder.String()
}

// treeNode is one entry in the rendered tree.
type treeNode struct {
	name     string
	isDir    bool
	children map[string]*treeNode
}

func newTreeNode(name string, isDir bool) *treeNode {
	return &treeNode{
		name:     name,
		isDir:    isDir,
		children: make(map[string]*treeNode),
	}
}

// insert threads one relative path through the tree, creating intermediate
// directory nodes as needed.
func (n *treeNode) insert(parts []string) {
	if len(parts) == 0 {
		return
	}
	child, ok := n.children[parts[0]]
	if !ok {
		child = newTreeNode(parts[0], len(parts) > 1)
		n.children[parts[0]] = child
	}
	if len(parts) > 1 {
		child.isDir = true
		child.insert(parts[1:])
	}
}

// render writes the subtree with box-drawing connectors.
func (n *treeNode) render(treeBuilder *strings.Builder, prefix string) {
	entries := n.sortedChildren()
	for i, child := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if child.isDir {
			fmt.Fprintf(treeBuilder, "%s%s%s/\n", prefix, connector, child.name)
			child.render(treeBuilder, prefix+extension)
		} else {
			fmt.Fprintf(treeBuilder, "%s%s%s\n", prefix, connector, child.name)
		}
	}
}

// sortedChildren orders children directories first, then files, alphabetically.
func (n *treeNode) sortedChildren() []*treeNode {
	entries := make([]*treeNode, 0, len(n.children))
	for _, child := range n.children {
		entries = append(entries, child)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})
	return entries
}
