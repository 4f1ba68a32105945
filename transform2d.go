package graft

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Transform2D is a node in a 2D transform hierarchy. Its authored state is
// a position, a per-axis scale, and a rotation in radians; the inherited
// [Transform] engine lazily derives the local and world [ebiten.GeoM]
// matrices from them.
//
// Transform2D does not own a child list. The caller assembles and owns the
// tree; a node only holds a non-owning link to its parent, which may be
// replaced freely via [Transform2D.SetParent]. Detach a node from its
// chain (SetParent(nil)) before dropping it, so the old ancestors' signal
// subscriber lists stop referencing it.
type Transform2D struct {
	Transform[ebiten.GeoM]

	position Vec2
	scale    Vec2
	rotation float64
}

// NewTransform2D creates a root transform with position (0, 0), scale
// (1, 1), and rotation 0. Both matrix caches start dirty, so the first
// read computes them; with the default properties both matrices are the
// identity.
func NewTransform2D() *Transform2D {
	t := &Transform2D{
		scale: Vec2One,
	}
	t.initTransform(t)
	return t
}

// Parent returns the parent transform, or nil for a root.
func (t *Transform2D) Parent() *Transform2D {
	p, _ := t.parentNode().(*Transform2D)
	return p
}

// SetParent makes parent this node's parent, or detaches the node when
// parent is nil. Subscriptions along the old and new ancestor chains are
// rewired in full; setting the current parent again is a no-op. Cached
// matrices are not invalidated by reparenting itself, only by subsequent
// mutations. Creating a cycle is a caller error and is not detected.
func (t *Transform2D) SetParent(parent *Transform2D) {
	if parent == nil {
		t.setParent(nil)
		return
	}
	t.setParent(parent)
}

// Position returns the authored local position.
func (t *Transform2D) Position() Vec2 { return t.position }

// Scale returns the authored local scale.
func (t *Transform2D) Scale() Vec2 { return t.scale }

// Rotation returns the authored local rotation in radians.
func (t *Transform2D) Rotation() float64 { return t.rotation }

// SetPosition sets the node's local position and invalidates both cached
// matrices. Setters never compare against the old value; writing the same
// position still dirties and still notifies subscribers.
func (t *Transform2D) SetPosition(x, y float64) {
	t.position = Vec2{x, y}
	t.MarkLocalDirty()
	t.MarkWorldDirty()
}

// SetScale sets the node's local scale and invalidates both cached
// matrices.
func (t *Transform2D) SetScale(sx, sy float64) {
	t.scale = Vec2{sx, sy}
	t.MarkLocalDirty()
	t.MarkWorldDirty()
}

// SetRotation sets the node's local rotation (in radians) and invalidates
// both cached matrices.
func (t *Transform2D) SetRotation(r float64) {
	t.rotation = r
	t.MarkLocalDirty()
	t.MarkWorldDirty()
}

// RecalculateLocal builds the local matrix from the authored properties.
//
// Composition order (applied to points first to last):
//
//	Translate(-parent.position) -> Scale -> Rotate -> Translate(parent.position) -> Translate(position)
//
// For a parented node, scale and rotation therefore pivot about the
// parent's raw authored position, read directly off the parent rather than
// derived through the parent's matrix chain. A root node pivots about the
// origin:
//
//	Scale -> Rotate -> Translate(position)
func (t *Transform2D) RecalculateLocal() ebiten.GeoM {
	var m ebiten.GeoM
	if p := t.Parent(); p != nil {
		px, py := p.position.X, p.position.Y
		m.Translate(-px, -py)
		m.Scale(t.scale.X, t.scale.Y)
		m.Rotate(t.rotation)
		m.Translate(px, py)
		m.Translate(t.position.X, t.position.Y)
	} else {
		m.Scale(t.scale.X, t.scale.Y)
		m.Rotate(t.rotation)
		m.Translate(t.position.X, t.position.Y)
	}
	return m
}

// RecalculateWorld composes the world matrix: the parent's world matrix
// applied first, then this node's local matrix. Reading the parent's world
// matrix recursively refreshes the rest of the chain if it is stale. A
// root's world matrix is its local matrix.
func (t *Transform2D) RecalculateWorld(local ebiten.GeoM) ebiten.GeoM {
	if p := t.Parent(); p != nil {
		m := p.WorldMatrix()
		m.Concat(local)
		return m
	}
	return local
}

// WorldPosition returns the node's origin in root space.
func (t *Transform2D) WorldPosition() Vec2 {
	x, y := t.LocalToWorld(0, 0)
	return Vec2{x, y}
}

// LocalToWorld converts a point in this node's model space to root space.
func (t *Transform2D) LocalToWorld(lx, ly float64) (wx, wy float64) {
	m := t.WorldMatrix()
	return m.Apply(lx, ly)
}

// WorldToLocal converts a root-space point to this node's model space.
// If the world matrix is singular (a zero scale somewhere in the chain),
// the point is returned unchanged.
func (t *Transform2D) WorldToLocal(wx, wy float64) (lx, ly float64) {
	m := t.WorldMatrix()
	if !m.IsInvertible() {
		return wx, wy
	}
	m.Invert()
	return m.Apply(wx, wy)
}
