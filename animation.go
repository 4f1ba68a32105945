package graft

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenKind selects which property a TweenGroup writes back to.
type tweenKind uint8

const (
	tweenPosition tweenKind = iota
	tweenScale
	tweenRotation
)

// TweenGroup animates one transform property over time. Create one via
// [TweenPosition], [TweenScale], or [TweenRotation] and call Update(dt)
// each frame. Values are written back through the property setters, so
// every step drives the normal invalidation protocol (descendants get
// dirtied, BecameDirty fires).
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	kind   tweenKind
	target *Transform2D
	Done   bool
}

// Update advances the group by dt seconds and applies the current values
// to the target. Once every tween has finished, Done is set and further
// calls do nothing.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	var vals [2]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	switch g.kind {
	case tweenPosition:
		g.target.SetPosition(vals[0], vals[1])
	case tweenScale:
		g.target.SetScale(vals[0], vals[1])
	case tweenRotation:
		g.target.SetRotation(vals[0])
	}
}

// TweenPosition creates a TweenGroup that animates the target's position to
// (toX, toY) over the given duration using the easing function.
func TweenPosition(target *Transform2D, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := target.Position()
	g := &TweenGroup{count: 2, kind: tweenPosition, target: target}
	g.tweens[0] = gween.New(float32(from.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(toY), duration, fn)
	return g
}

// TweenScale creates a TweenGroup that animates the target's scale to
// (toSX, toSY) over the given duration using the easing function.
func TweenScale(target *Transform2D, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := target.Scale()
	g := &TweenGroup{count: 2, kind: tweenScale, target: target}
	g.tweens[0] = gween.New(float32(from.X), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(toSY), duration, fn)
	return g
}

// TweenRotation creates a TweenGroup that animates the target's rotation to
// the given angle (in radians) over the given duration.
func TweenRotation(target *Transform2D, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, kind: tweenRotation, target: target}
	g.tweens[0] = gween.New(float32(target.Rotation()), float32(to), duration, fn)
	return g
}
