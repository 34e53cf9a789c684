// Package document reads and writes measurement trees as YAML.
//
// JSON documents are accepted too, since JSON is valid YAML. A document is a
// single item:
//
//	name: toolbar
//	kind: row            # plain | column | row (or Item, ColumnLayout, RowLayout)
//	spacing: 4
//	margins: {left: 2, right: 2}   # or a single number for all sides
//	minimumWidth: 0
//	minimumHeight: 0
//	children: [...]
package document
