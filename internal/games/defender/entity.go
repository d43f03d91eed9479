package defender

import (
	"github.com/vovakirdan/glitch-defender/internal/config"
	"github.com/vovakirdan/glitch-defender/internal/core"
)

// Field is the play area. Origin is the top-left corner, y grows downward.
type Field struct {
	W, H float64
}

// scale returns the size multiplier for entities created on this field.
func (f Field) scale(ref config.FieldConfig) float64 {
	return min(f.W/ref.ReferenceWidth, f.H/ref.ReferenceHeight)
}

// scaled returns base*scale, never smaller than minimum.
func scaled(base, scale, minimum float64) float64 {
	return max(base*scale, minimum)
}

// entity is the state shared by every kind.
type entity struct {
	X, Y, W, H        float64
	MarkedForDeletion bool
}

// Rect returns the collision rectangle.
func (e *entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Deleted reports whether the entity is marked for removal this frame.
func (e *entity) Deleted() bool {
	return e.MarkedForDeletion
}

func (e *entity) markDeleted() {
	e.MarkedForDeletion = true
}

func (e *entity) centerX() float64 {
	return e.X + e.W/2
}

// overlaps is the collision test used by every stage of the pass.
func overlaps(a, b interface{ Rect() core.Rect }) bool {
	return a.Rect().Intersects(b.Rect())
}

// compact drops marked entities in place.
func compact[T interface{ Deleted() bool }](list []T) []T {
	kept := list[:0]
	for _, e := range list {
		if !e.Deleted() {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}
