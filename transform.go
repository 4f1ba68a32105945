package graft

// dirtyFlags tracks which cached matrices no longer reflect authored or
// ancestor state.
type dirtyFlags uint8

const (
	localDirty dirtyFlags = 1 << iota
	worldDirty

	allDirty = localDirty | worldDirty
)

// Recalculator supplies the two matrix-producing hooks a concrete transform
// variant implements for the engine: one building the local matrix from the
// node's authored state, one building the world matrix from the local
// matrix and, if present, the parent's world matrix. [Transform2D] is the
// 2D implementation; a 3D variant would implement the same pair with its
// own matrix type.
type Recalculator[M any] interface {
	RecalculateLocal() M
	RecalculateWorld(local M) M
}

// Node is the surface a transform needs from its ancestors: lazily cached
// matrices and the two signals. It is implemented by embedding [Transform],
// the way [Transform2D] does.
type Node[M any] interface {
	LocalMatrix() M
	WorldMatrix() M
	BecameDirty() *Signal
	Updated() *Signal

	node() *Transform[M]
}

// ancestorConn records one subscription this node owns on an ancestor's
// BecameDirty signal, so the exact connection can be severed on reparent.
type ancestorConn struct {
	sig *Signal
	id  uint32
}

// Transform is the generic dirty-flagged caching engine underneath every
// concrete transform variant. It owns the cached matrices, the dirty bits,
// the parent link, the ancestor subscriptions, and the lazy recompute
// protocol; the variant supplies authored state and the two
// [Recalculator] hooks.
//
// A Transform starts with both caches dirty and no parent. It is not safe
// for concurrent use.
type Transform[M any] struct {
	recalc Recalculator[M]
	parent Node[M]

	local M
	world M
	flags dirtyFlags

	becameDirty Signal
	updated     Signal

	// onAncestorDirty marks the world cache stale without recomputing
	// anything; the same handler is connected to every ancestor.
	onAncestorDirty func()
	ancestors       []ancestorConn
}

// initTransform wires the engine to its concrete variant. Called once from
// the variant's constructor.
func (t *Transform[M]) initTransform(recalc Recalculator[M]) {
	t.recalc = recalc
	t.flags = allDirty
	t.onAncestorDirty = func() {
		t.flags |= worldDirty
	}
}

func (t *Transform[M]) node() *Transform[M] { return t }

// BecameDirty returns the signal fired on every world invalidation of this
// node. It fires per invalidating event, not per clean-to-dirty
// transition, so repeated invalidation without an intervening read emits
// repeatedly.
func (t *Transform[M]) BecameDirty() *Signal { return &t.becameDirty }

// Updated returns the signal fired exactly once per completed world-matrix
// recomputation. Subscribe to it to re-read WorldMatrix only when it has
// actually changed, instead of polling every frame.
func (t *Transform[M]) Updated() *Signal { return &t.updated }

// LocalMatrix returns the node's local matrix, recomputing it first if an
// authored property changed since the last read.
func (t *Transform[M]) LocalMatrix() M {
	t.recalculateLocalIfDirty()
	return t.local
}

// WorldMatrix returns the node's world matrix, recomputing it first if the
// node or any ancestor changed since the last read. The recompute pulls
// the local matrix and the parent's world matrix as needed, so a single
// read after a root mutation refreshes each node along the chain once.
func (t *Transform[M]) WorldMatrix() M {
	t.recalculateWorldIfDirty()
	return t.world
}

// MarkLocalDirty invalidates the cached local matrix. Property setters on
// the concrete variant call this; they also call MarkWorldDirty, since the
// world matrix is derived from local state.
func (t *Transform[M]) MarkLocalDirty() {
	t.flags |= localDirty
}

// MarkWorldDirty invalidates the cached world matrix and emits BecameDirty.
// The emit is unconditional: every call notifies subscribers, even when the
// cache is already dirty, so observers see every invalidating event rather
// than a deduplicated edge.
func (t *Transform[M]) MarkWorldDirty() {
	t.flags |= worldDirty
	t.becameDirty.Emit()
}

func (t *Transform[M]) recalculateLocalIfDirty() {
	if t.flags&localDirty == 0 {
		return
	}
	t.local = t.recalc.RecalculateLocal()
	t.flags &^= localDirty
	// A fresh local matrix always invalidates world, including for readers
	// that only ever touch LocalMatrix.
	t.MarkWorldDirty()
}

func (t *Transform[M]) recalculateWorldIfDirty() {
	if t.flags&worldDirty == 0 {
		return
	}
	t.recalculateLocalIfDirty()
	t.world = t.recalc.RecalculateWorld(t.local)
	t.flags &^= worldDirty
	t.updated.Emit()
}

// parentNode returns the parent link, or nil for a root.
func (t *Transform[M]) parentNode() Node[M] { return t.parent }

// setParent reassigns the parent link and rewires this node's ancestor
// subscriptions: every subscription recorded on the old chain is severed,
// then the ancestor-dirty handler is connected to each node of the new
// chain, from the new parent up to its root. Passing the current parent is
// a no-op that disturbs neither dirty state nor subscriptions. Passing a
// nil interface detaches the node.
//
// Introducing a cycle is a caller error; it is not detected and later
// reads will recurse without bound.
func (t *Transform[M]) setParent(newParent Node[M]) {
	if newParent == t.parent {
		return
	}
	for i, c := range t.ancestors {
		c.sig.Disconnect(c.id)
		t.ancestors[i] = ancestorConn{}
	}
	t.ancestors = t.ancestors[:0]
	t.parent = newParent
	for p := newParent; p != nil; p = p.node().parent {
		sig := p.BecameDirty()
		t.ancestors = append(t.ancestors, ancestorConn{sig: sig, id: sig.Connect(t.onAncestorDirty)})
	}
}
