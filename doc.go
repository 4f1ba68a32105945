// Package graft is a lazy transform hierarchy for 2D scene graphs built on
// [Ebitengine].
//
// Graft maintains two derived matrices per node: a local matrix built from
// the node's authored position, scale, and rotation, and a world matrix
// that composes the local matrix through the node's ancestor chain. Both
// are recomputed only when they are actually read.
//
// # Quick start
//
//	parent := graft.NewTransform2D()
//	parent.SetPosition(100, 50)
//
//	child := graft.NewTransform2D()
//	child.SetParent(parent)
//	child.SetPosition(10, 0)
//
//	m := child.WorldMatrix() // ebiten.GeoM, ready for DrawImageOptions
//
// # Invalidation and caching
//
// Mutating an authored property marks the node's cached matrices dirty and
// notifies every descendant that chained through it; nothing is recomputed
// until a matrix is read. Reading [Transform.WorldMatrix] on a deep node
// after a root mutation recomputes each node along the chain exactly once,
// no matter how many descendants or observers exist.
//
// Invalidation is push-based and recomputation pull-based: each node
// subscribes to the "became dirty" signal of every ancestor, so an
// ancestor mutation marks the whole subtree dirty in one broadcast, and
// the next read pulls fresh matrices down the chain.
// [Transform2D.SetParent] rewires the full subscription chain, not just
// the immediate link.
//
// Consumers that would otherwise poll can subscribe to a node's
// [Transform.Updated] signal, which fires once per completed world-matrix
// recomputation.
//
// # Scope
//
// Graft is a single-threaded library with no rendering, input, or game-loop
// surface; it produces [ebiten.GeoM] values and leaves drawing to the
// caller. Concurrent use from multiple goroutines is not supported. Parent
// cycles are a caller error and are not detected.
//
// [Ebitengine]: https://ebitengine.org
package graft
