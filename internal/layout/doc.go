// Package layout computes minimum sizes for trees of layout items.
//
// Items are column stacks, row stacks, or plain grouping nodes. A positive
// minimum-size hint on an item wins outright. A stack measured along its own
// axis adds up its children's direct hints, the spacing between them and its
// margins. Anything else adds up the recursive measurements of its children.
// Types are re-exported through the root minsize package for public consumption.
//
// The main entry point is [Measurer], created with [NewMeasurer]. Trees are
// supplied through the [Measurable] interface; [Node] is a ready-made
// implementation.
package layout
