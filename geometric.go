/*
 * geometric.go, part of pepbuild.
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

//appzero is used to correct floating point errors. Everything with
//absolute value equal or less than this is considered zero.
const appzero float64 = 0.000001

const (
	Deg2Rad = math.Pi / 180.0
	Rad2Deg = 180.0 / math.Pi
)

//Angle takes 2 vectors and calculates the angle in radians between them.
//It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm(2) * v2.Norm(2)
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

func cross(a, b *v3.Matrix) *v3.Matrix {
	c := v3.Zeros(1)
	c.Cross(a, b)
	return c
}

//Dihedral calculates the dihedral between the points a, b, c, d, where
//the first plane is defined by a, b, c and the second by b, c, d. The
//angle is returned in radians, with the IUPAC sign convention.
func Dihedral(a, b, c, d *v3.Matrix) float64 {
	all := []*v3.Matrix{a, b, c, d}
	for number, point := range all {
		if point == nil {
			panic(fmt.Sprintf("Vector %d is nil", number))
		}
		pr, pc := point.Dims()
		if pr != 1 || pc != 3 {
			panic(fmt.Sprintf("Vector %d has invalid shape", number))
		}
	}
	//bma=b minus a
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bmascaled := v3.Zeros(1)
	bma.Sub(b, a)
	cmb.Sub(c, b)
	dmc.Sub(d, c)
	bmascaled.Scale(cmb.Norm(2), bma)
	first := bmascaled.Dot(cross(cmb, dmc))
	v1 := cross(bma, cmb)
	v2 := cross(cmb, dmc)
	second := v1.Dot(v2)
	dihedral := math.Atan2(first, second)
	return dihedral
}

//RotateAbout returns a copy of the coordinates in coordsorig rotated
//by angle radians about the axis that goes from ax1 to ax2, with the
//right-hand convention. The original coordinates are not changed.
func RotateAbout(coordsorig, ax1, ax2 *v3.Matrix, angle float64) *v3.Matrix {
	if coordsorig == nil || ax1 == nil || ax2 == nil {
		panic(ErrNilData)
	}
	axis := v3.Zeros(1)
	axis.Sub(ax2, ax1)
	axis.Unit(axis)
	kx := axis.At(0, 0)
	ky := axis.At(0, 1)
	kz := axis.At(0, 2)
	sin, cos := math.Sincos(angle)
	rot := v3.Zeros(coordsorig.NVecs())
	for i := 0; i < coordsorig.NVecs(); i++ {
		//the vector from ax1 to the point, rotated with the
		//Rodrigues formula, then translated back.
		vx := coordsorig.At(i, 0) - ax1.At(0, 0)
		vy := coordsorig.At(i, 1) - ax1.At(0, 1)
		vz := coordsorig.At(i, 2) - ax1.At(0, 2)
		kdotv := kx*vx + ky*vy + kz*vz
		crx := ky*vz - kz*vy
		cry := kz*vx - kx*vz
		crz := kx*vy - ky*vx
		rot.Set(i, 0, ax1.At(0, 0)+vx*cos+crx*sin+kx*kdotv*(1-cos))
		rot.Set(i, 1, ax1.At(0, 1)+vy*cos+cry*sin+ky*kdotv*(1-cos))
		rot.Set(i, 2, ax1.At(0, 2)+vz*cos+crz*sin+kz*kdotv*(1-cos))
	}
	return rot
}
