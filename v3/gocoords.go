/*
 * gocoords.go, part of pepbuild.
 *
 * Copyright 2021 The pepbuild developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, make([]float64, vecs*3))}
}

//NVecs returns the number of vectors in the receiver.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//SwapVecs swaps the vectors i and j of the receiver.
func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	rowi := mat.Row(nil, i, F.Dense)
	rowj := mat.Row(nil, j, F.Dense)
	for k := 0; k < 3; k++ {
		F.Set(i, k, rowj[k])
		F.Set(j, k, rowi[k])
	}
}

//AddVec adds a vector vec to all the vectors of A, and puts the result
//in the receiver. Panics if shapes mismatch.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != 3 || rc != 3 || rr != 1 || ar != fr || fc != 3 {
		panic(ErrShape)
	}
	var B *Matrix
	if A == F {
		B = A
	} else {
		B = Zeros(ar)
		B.Copy(A)
	}
	for i := 0; i < ar; i++ {
		j := B.VecView(i)
		j.Dense.Add(j.Dense, vec.Dense)
	}
	F.Copy(B)
}

//SubVec subtracts the vector vec from all vectors of A, and puts the
//result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	vec2 := Zeros(1)
	vec2.Dense.Scale(-1, vec.Dense)
	F.AddVec(A, vec2)
}

//Cross puts the cross product of the first vectors of a and b in the
//receiver. It panics if a, b or the receiver have more than one vector.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() != 1 || b.NVecs() != 1 || F.NVecs() != 1 {
		panic(ErrNoCrossProduct)
	}
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

//Unit puts in the receiver the unit vector pointing in the same
//direction as the vector A (A must have one vector only).
func (F *Matrix) Unit(A *Matrix) {
	norm := 1.0 / A.Norm(2)
	F.Dense.Scale(norm, A.Dense)
}

//String returns a neat representation of the Matrix.
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, r+2, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, 3, 3)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense)
		if i == 0 {
			v[1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	v[r] = v[r][:len(v[r])-1]
	ret := ""
	for _, val := range v {
		ret += val
	}
	return ret
}
