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

package transform

import (
	"fmt"

	"seehuhn.de/go/sketch/linalg"
	"seehuhn.de/go/sketch/object"
)

// Op3 is a 3D transformation step.  3D operations only apply to
// wireframe objects.
type Op3 interface {
	isOp3()
	fmt.Stringer
}

// Translate3D moves a wireframe by (DX, DY, DZ).
type Translate3D struct {
	DX, DY, DZ float64
}

// Scale3D scales a wireframe about a fixed point.
type Scale3D struct {
	SX, SY, SZ float64
	Pivot      Pivot3
}

// Rotate3D rotates a wireframe by AX degrees about the x-axis, then by
// AY about the y-axis, then by AZ about the z-axis.  The axes pass
// through the pivot.
type Rotate3D struct {
	AX, AY, AZ float64
	Pivot      Pivot3
}

// RotateAxis rotates a wireframe by Deg degrees about the line from From
// to To.
type RotateAxis struct {
	From, To linalg.Vec3
	Deg      float64
}

func (Translate3D) isOp3() {}
func (Scale3D) isOp3()     {}
func (Rotate3D) isOp3()    {}
func (RotateAxis) isOp3()  {}

func (op Translate3D) String() string {
	return fmt.Sprintf("translate3d(%g, %g, %g)", op.DX, op.DY, op.DZ)
}

func (op Scale3D) String() string {
	return fmt.Sprintf("scale3d(%g, %g, %g, %s)", op.SX, op.SY, op.SZ, op.Pivot)
}

func (op Rotate3D) String() string {
	return fmt.Sprintf("rotate3d(%g, %g, %g, %s)", op.AX, op.AY, op.AZ, op.Pivot)
}

func (op RotateAxis) String() string {
	return fmt.Sprintf("rotate-axis(%v, %v, %g)", op.From, op.To, op.Deg)
}

// Pivot3 is the fixed point of a 3D scaling or rotation.
// The zero value denotes the centroid of the wireframe.
type Pivot3 struct {
	Kind PivotKind
	At   linalg.Vec3
}

func (p Pivot3) String() string {
	switch p.Kind {
	case PivotCenter:
		return "center"
	case PivotOrigin:
		return "origin"
	default:
		return fmt.Sprintf("(%g, %g, %g)", p.At.X, p.At.Y, p.At.Z)
	}
}

func (p Pivot3) resolve(center linalg.Vec3) linalg.Vec3 {
	switch p.Kind {
	case PivotOrigin:
		return linalg.Vec3{}
	case PivotPoint:
		return p.At
	default:
		return center
	}
}

// Validate3 checks the parameters of a single 3D operation.
func Validate3(op Op3) error {
	switch op := op.(type) {
	case Translate3D:
		return finite(op.DX, op.DY, op.DZ)
	case Scale3D:
		if err := finite(op.SX, op.SY, op.SZ, op.Pivot.At.X, op.Pivot.At.Y, op.Pivot.At.Z); err != nil {
			return err
		}
		if op.SX == 0 || op.SY == 0 || op.SZ == 0 {
			return fmt.Errorf("%w: factors (%g, %g, %g)", ErrInvalidScale, op.SX, op.SY, op.SZ)
		}
		return nil
	case Rotate3D:
		return finite(op.AX, op.AY, op.AZ, op.Pivot.At.X, op.Pivot.At.Y, op.Pivot.At.Z)
	case RotateAxis:
		if err := finite(op.Deg, op.From.X, op.From.Y, op.From.Z, op.To.X, op.To.Y, op.To.Z); err != nil {
			return err
		}
		if op.From == op.To {
			return fmt.Errorf("%w: rotation axis has zero length", ErrInvalidTransform)
		}
		return nil
	case nil:
		return fmt.Errorf("%w: missing operation", ErrInvalidTransform)
	default:
		return fmt.Errorf("%w: unsupported operation %T", ErrInvalidTransform, op)
	}
}

// Compose3 returns the matrix equivalent to applying ops in order to the
// wireframe s.  Shapes other than wireframes give [object.ErrInvalidObject].
func Compose3(s object.Shape, ops ...Op3) (linalg.Mat4, error) {
	w, ok := s.(object.Wireframe)
	if !ok {
		return linalg.Mat4{}, fmt.Errorf("%w: 3D transformation of a %s",
			object.ErrInvalidObject, object.KindOf(s))
	}
	for _, op := range ops {
		if err := Validate3(op); err != nil {
			return linalg.Mat4{}, err
		}
	}

	c0 := object.Centroid3(w)
	M := linalg.Identity4
	for _, op := range ops {
		center := M.Apply(c0)
		switch op := op.(type) {
		case Translate3D:
			M = M.Mul(linalg.Translate3(op.DX, op.DY, op.DZ))
		case Scale3D:
			p := op.Pivot.resolve(center)
			M = M.Mul(linalg.Translate3(-p.X, -p.Y, -p.Z)).
				Mul(linalg.Scale3(op.SX, op.SY, op.SZ)).
				Mul(linalg.Translate3(p.X, p.Y, p.Z))
		case Rotate3D:
			p := op.Pivot.resolve(center)
			M = M.Mul(linalg.Translate3(-p.X, -p.Y, -p.Z)).
				Mul(linalg.RotateXDeg(op.AX)).
				Mul(linalg.RotateYDeg(op.AY)).
				Mul(linalg.RotateZDeg(op.AZ)).
				Mul(linalg.Translate3(p.X, p.Y, p.Z))
		case RotateAxis:
			R, err := linalg.RotateAxisDeg(op.From, op.To, op.Deg)
			if err != nil {
				return linalg.Mat4{}, err
			}
			M = M.Mul(R)
		}
	}

	if !M.IsFinite() {
		return linalg.Mat4{}, fmt.Errorf("%w: composed matrix overflows", ErrInvalidTransform)
	}
	return M, nil
}

// Apply3 transforms the wireframe object o in place.  On error, o is not
// modified.
func Apply3(o *object.Object, ops ...Op3) error {
	M, err := Compose3(o.Shape, ops...)
	if err != nil {
		return err
	}
	res, err := object.Transform3(o.Shape, M)
	if err != nil {
		return err
	}
	if err := object.Validate(res); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransform, err)
	}
	o.Shape = res
	return nil
}
