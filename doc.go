// Package minsize computes minimum sizes for trees of layout items.
//
// Users import this single package for the public API: tree construction,
// measurement, validation and the Bound helper. Trees built by a UI
// framework can be measured directly by implementing [Measurable].
package minsize
