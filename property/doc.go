// Package property models the paint property trees that paint chunks refer
// to: transform, clip, effect and scroll nodes.
//
// Nodes are immutable once created and are shared by reference. A chunk's
// State holds one node of each tree; two States are the same when they hold
// the same nodes, which is plain == on State.
//
// Each tree has a process-wide root. Nodes created with a nil parent hang
// off that root.
package property
