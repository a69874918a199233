// seehuhn.de/go/sketch - a 2D scene transformation and clipping library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package transform applies sequences of geometric transformations to
// scene objects.
//
// A list of operations is first validated and composed into a single
// matrix, which is then applied once to every control point.  If any
// operation is invalid, the object is left unchanged.
package transform

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/linalg"
	"seehuhn.de/go/sketch/object"
)

var (
	// ErrInvalidScale indicates a scale factor of zero.
	ErrInvalidScale = errors.New("transform: invalid scale")

	// ErrInvalidTransform is returned for non-finite parameters and for
	// transformations which cannot be inverted.
	ErrInvalidTransform = linalg.ErrInvalidTransform
)

// Op is a 2D transformation step.
type Op interface {
	isOp()
	fmt.Stringer
}

// Translate moves an object by (DX, DY).
type Translate struct {
	DX, DY float64
}

// Scale scales an object by SX and SY, keeping the pivot fixed.
type Scale struct {
	SX, SY float64
	Pivot  Pivot
}

// Rotate turns an object counter-clockwise by Deg degrees about the pivot.
type Rotate struct {
	Deg   float64
	Pivot Pivot
}

func (Translate) isOp() {}
func (Scale) isOp()     {}
func (Rotate) isOp()    {}

func (op Translate) String() string {
	return fmt.Sprintf("translate(%g, %g)", op.DX, op.DY)
}

func (op Scale) String() string {
	return fmt.Sprintf("scale(%g, %g, %s)", op.SX, op.SY, op.Pivot)
}

func (op Rotate) String() string {
	return fmt.Sprintf("rotate(%g, %s)", op.Deg, op.Pivot)
}

// PivotKind selects the fixed point of a scaling or rotation.
type PivotKind int

const (
	// PivotCenter uses the centroid of the object's control points.
	PivotCenter PivotKind = iota

	// PivotOrigin uses the world origin.
	PivotOrigin

	// PivotPoint uses an explicitly given point.
	PivotPoint
)

// Pivot is the fixed point of a scaling or rotation.
// The zero value denotes the centroid of the object.
type Pivot struct {
	Kind PivotKind
	At   vec.Vec2
}

// Common pivots.
var (
	Center = Pivot{Kind: PivotCenter}
	Origin = Pivot{Kind: PivotOrigin}
)

// About returns the pivot at the world point p.
func About(p vec.Vec2) Pivot {
	return Pivot{Kind: PivotPoint, At: p}
}

func (p Pivot) String() string {
	switch p.Kind {
	case PivotCenter:
		return "center"
	case PivotOrigin:
		return "origin"
	default:
		return fmt.Sprintf("(%g, %g)", p.At.X, p.At.Y)
	}
}

// resolve returns the world coordinates of the pivot, given the current
// centroid of the object.
func (p Pivot) resolve(center vec.Vec2) vec.Vec2 {
	switch p.Kind {
	case PivotOrigin:
		return vec.Vec2{}
	case PivotPoint:
		return p.At
	default:
		return center
	}
}

// Validate checks the parameters of a single operation.
func Validate(op Op) error {
	switch op := op.(type) {
	case Translate:
		return finite(op.DX, op.DY)
	case Scale:
		if err := finite(op.SX, op.SY, op.Pivot.At.X, op.Pivot.At.Y); err != nil {
			return err
		}
		if op.SX == 0 || op.SY == 0 {
			return fmt.Errorf("%w: factors (%g, %g)", ErrInvalidScale, op.SX, op.SY)
		}
		return nil
	case Rotate:
		return finite(op.Deg, op.Pivot.At.X, op.Pivot.At.Y)
	case nil:
		return fmt.Errorf("%w: missing operation", ErrInvalidTransform)
	default:
		return fmt.Errorf("%w: unsupported operation %T", ErrInvalidTransform, op)
	}
}

func finite(xs ...float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: non-finite parameter %g", ErrInvalidTransform, x)
		}
	}
	return nil
}

// Compose returns the single matrix equivalent to applying ops in order
// to the shape s.  Centre pivots refer to the centroid of s as moved by
// the operations before them.
//
// All operations are validated before anything is composed.  Since every
// factor is invertible, so is the result; only overflow to non-finite
// entries is reported.
func Compose(s object.Shape, ops ...Op) (linalg.Mat3, error) {
	for _, op := range ops {
		if err := Validate(op); err != nil {
			return linalg.Mat3{}, err
		}
	}

	c0 := object.Centroid(s)
	M := linalg.Identity3
	for _, op := range ops {
		// affine maps preserve the mean of the control points
		center := M.Apply(c0)
		switch op := op.(type) {
		case Translate:
			M = M.Mul(linalg.Translate(op.DX, op.DY))
		case Scale:
			M = M.Mul(linalg.ScaleAbout(op.Pivot.resolve(center), op.SX, op.SY))
		case Rotate:
			M = M.Mul(linalg.RotateAboutDeg(op.Pivot.resolve(center), op.Deg))
		}
	}

	if !M.IsFinite() {
		return linalg.Mat3{}, fmt.Errorf("%w: composed matrix overflows", ErrInvalidTransform)
	}
	return M, nil
}

// Apply transforms the object o in place.  On error, o is not modified.
func Apply(o *object.Object, ops ...Op) error {
	M, err := Compose(o.Shape, ops...)
	if err != nil {
		return err
	}
	res := object.Transform(o.Shape, M)
	if err := object.Validate(res); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransform, err)
	}
	o.Shape = res
	return nil
}

// Inverse returns operations which undo ops when applied to the shape
// which results from applying ops to s.
func Inverse(s object.Shape, ops ...Op) ([]Op, error) {
	var res []Op
	cur := object.Clone(s)
	centers := make([]vec.Vec2, len(ops))
	for i, op := range ops {
		if err := Validate(op); err != nil {
			return nil, err
		}
		centers[i] = object.Centroid(cur)
		M, err := Compose(cur, op)
		if err != nil {
			return nil, err
		}
		cur = object.Transform(cur, M)
	}
	for i := len(ops) - 1; i >= 0; i-- {
		switch op := ops[i].(type) {
		case Translate:
			res = append(res, Translate{DX: -op.DX, DY: -op.DY})
		case Scale:
			p := op.Pivot
			if p.Kind == PivotCenter {
				p = About(centers[i])
			}
			res = append(res, Scale{SX: 1 / op.SX, SY: 1 / op.SY, Pivot: p})
		case Rotate:
			p := op.Pivot
			if p.Kind == PivotCenter {
				p = About(centers[i])
			}
			res = append(res, Rotate{Deg: -op.Deg, Pivot: p})
		}
	}
	return res, nil
}
