// Package engine manages the state and relationships of stacked branches.
//
// It is the core of pancake, responsible for:
//   - Tracking parent-child relationships between branches
//   - Answering stack queries (children, top, bottom, the forest of stacks)
//   - Planning the order in which a stack is rebased
//
// The graph is kept independently of git: a branch's parent is whatever was
// recorded when it was created, and may name a branch pancake does not track.
package engine
