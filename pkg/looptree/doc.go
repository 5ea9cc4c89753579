// Package looptree models a host engine's update schedule as an ordered,
// labeled n-ary tree and provides the pure editing algorithms on it.
//
// A schedule is a tree of stages. Labels identify stages but are not
// unique; every search in this package resolves duplicates the same way:
// pre-order depth-first, children left to right. A node's whole subtree
// is visited before its next sibling, so an earlier deep occurrence wins
// over a later shallow one.
//
// Nodes carry two opaque handles (NativeUpdate, LoopCondition) owned by
// the host. looptree never interprets them; it only preserves them
// verbatim through copies and edits.
//
// All operations here work on plain trees and perform no host I/O.
// Session handling, snapshots, and host installation live in package
// loopedit.
package looptree
