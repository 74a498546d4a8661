/*
 * nerf.go, part of pepbuild.
 *
 * Copyright 2021 The pepbuild developers
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as published by
 * the Free Software Foundation, either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package pep

import (
	"fmt"
	"math"

	"github.com/pepbuild/pepbuild/v3"
)

//Place returns the coordinates of a new point D from the three
//reference points refA, refB and refC and the internal coordinates of
//D relative to them: the distance C-D in the same unit as the
//references, the angle B-C-D and the dihedral A-B-C-D, both in
//degrees, with the IUPAC sign convention for the dihedral. This is the
//natural-extension-reference-frame construction: every atom of a
//growing structure is obtained with one call to this function.
//
//The point is first computed in closed form with a zero A-B-C-D
//dihedral, and then rotated about the B->C axis by the requested
//dihedral. When the plane coefficients vanish in a way that makes the
//general closed form indeterminate, an alternative resolution of the
//same quadratic is used.
//
//The references must not be collinear: with collinear references the
//frame is undefined and the returned coordinates are NaN. Place does
//not check for this, as the caller (who owns the geometry) is in a
//better position to react.
func Place(refA, refB, refC *v3.Matrix, dist, angle, dihedral float64) *v3.Matrix {
	all := []*v3.Matrix{refA, refB, refC}
	for number, point := range all {
		if point == nil {
			panic(fmt.Sprintf("Reference %d is nil", number))
		}
		pr, pc := point.Dims()
		if pr != 1 || pc != 3 {
			panic(fmt.Sprintf("Reference %d has invalid shape", number))
		}
	}
	//everything in the frame of refC
	ax := refA.At(0, 0) - refC.At(0, 0)
	ay := refA.At(0, 1) - refC.At(0, 1)
	az := refA.At(0, 2) - refC.At(0, 2)
	bx := refB.At(0, 0) - refC.At(0, 0)
	by := refB.At(0, 1) - refC.At(0, 1)
	bz := refB.At(0, 2) - refC.At(0, 2)
	//coefficients of the plane through refA, refB and refC
	A := ay*bz - az*by
	B := az*bx - ax*bz
	G := ax*by - ay*bx
	F := math.Sqrt(bx*bx+by*by+bz*bz) * dist * math.Cos(Deg2Rad*angle)
	denom := B*B*(bx*bx+bz*bz) + A*A*(by*by+bz*bz) - 2*A*bx*bz*G +
		(bx*bx+by*by)*G*G - 2*B*by*(A*bx+bz*G)
	konst := math.Sqrt((B*bz - by*G) * (B*bz - by*G) *
		(-(F*F)*(A*A+B*B+G*G) + denom*dist*dist))
	X := (B*B*bx*F - A*B*by*F + F*G*(-A*bz+bx*G) + konst) / denom
	var Y, Z float64
	if (B == 0 || bz == 0) && (by == 0 || G == 0) {
		//the general expressions below divide by (B*bz - by*G),
		//which is zero here, so the quadratic is resolved the
		//other way around.
		konst1 := math.Sqrt(G * G * (-A*A*X*X + (B*B+G*G)*(dist-X)*(dist+X)))
		Y = (-A*B*X + konst1) / (B*B + G*G)
		Z = -(A*G*G*X + B*konst1) / (G * (B*B + G*G))
	} else {
		bzbyg := B*bz - by*G
		Y = (A*A*by*F*bzbyg + G*(-F*bzbyg*bzbyg+bx*konst) -
			A*(B*B*bx*bz*F-B*bx*by*F*G+bz*konst)) / (bzbyg * denom)
		Z = (A*A*bz*F*bzbyg + B*F*bzbyg*bzbyg + A*bx*F*G*(-B*bz+by*G) -
			B*bx*konst + A*by*konst) / (bzbyg * denom)
	}
	D := v3.Zeros(1)
	D.Set(0, 0, X+refC.At(0, 0))
	D.Set(0, 1, Y+refC.At(0, 1))
	D.Set(0, 2, Z+refC.At(0, 2))
	//D now has the right distance and angle but an arbitrary
	//dihedral. The difference with the requested one is a rotation
	//about the B->C axis.
	current := Dihedral(refA, refB, refC, D) * Rad2Deg
	return RotateAbout(D, refB, refC, Deg2Rad*(dihedral-current))
}
