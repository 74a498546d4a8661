/*
 * structure.go, part of pepbuild.
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

package pep

import (
	"github.com/pepbuild/pepbuild/v3"
)

//Atom is a single atom of a built structure: a name, an element symbol
//and a 1x3 coordinate, plus the occupancy and B-factor placeholders
//needed to write PDB records.
type Atom struct {
	Name      string
	Symbol    string
	Coord     *v3.Matrix
	Occupancy float64
	Bfactor   float64
}

//Copy returns a deep copy of the atom.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilAtom)
	}
	at := &Atom{Name: A.Name, Symbol: A.Symbol, Occupancy: A.Occupancy, Bfactor: A.Bfactor}
	if A.Coord != nil {
		at.Coord = v3.Zeros(1)
		at.Coord.Copy(A.Coord)
	}
	return at
}

//Residue is one monomer of a chain: an ordered list of atoms plus the
//identity information needed to grow the chain past it. Kind is the
//monomer-kind tag of the template that produced the residue, Name the
//3-letter name written to PDB output, and ID the 1-based sequence
//number. Tail names, in order, the 3 trailing backbone atoms that act
//as the geometric reference frame when the next residue is appended.
type Residue struct {
	Kind  string
	Name  string
	ID    int
	Tail  [3]string
	atoms []*Atom
}

func NewResidue(kind, name string, id int) *Residue {
	return &Residue{Kind: kind, Name: name, ID: id, atoms: make([]*Atom, 0, 8)}
}

//AddAtom appends the atom at to the residue. Atoms stay in insertion
//order, which is also the order in which they were built.
func (R *Residue) AddAtom(at *Atom) {
	if at == nil {
		panic(ErrNilAtom)
	}
	R.atoms = append(R.atoms, at)
}

//Len returns the number of atoms in the residue.
func (R *Residue) Len() int {
	return len(R.atoms)
}

//Atom returns the ith atom of the residue.
func (R *Residue) Atom(i int) *Atom {
	if i < 0 || i >= len(R.atoms) {
		panic(ErrIndexOutOfRange)
	}
	return R.atoms[i]
}

//ByName returns the first atom of the residue with the given name, or
//nil when no atom has that name.
func (R *Residue) ByName(name string) *Atom {
	for _, at := range R.atoms {
		if at.Name == name {
			return at
		}
	}
	return nil
}

//Names returns the names of all atoms of the residue, in order.
func (R *Residue) Names() []string {
	ret := make([]string, 0, len(R.atoms))
	for _, at := range R.atoms {
		ret = append(ret, at.Name)
	}
	return ret
}

//Chain is an ordered, append-only list of residues.
type Chain struct {
	ID       string
	residues []*Residue
}

func (C *Chain) AddResidue(r *Residue) {
	if r == nil {
		panic(ErrNilData)
	}
	C.residues = append(C.residues, r)
}

func (C *Chain) Len() int {
	return len(C.residues)
}

func (C *Chain) Residue(i int) *Residue {
	if i < 0 || i >= len(C.residues) {
		panic(ErrIndexOutOfRange)
	}
	return C.residues[i]
}

//Last returns the most recently added residue of the chain, or nil if
//the chain is empty.
func (C *Chain) Last() *Residue {
	if len(C.residues) == 0 {
		return nil
	}
	return C.residues[len(C.residues)-1]
}

//Model holds one chain. Built structures have a single conformation,
//so a model is little more than a numbered wrapper, but it keeps the
//hierarchy compatible with the usual PDB Structure/Model/Chain/Residue
//nesting.
type Model struct {
	ID    int
	chain *Chain
}

func (M *Model) Chain() *Chain {
	return M.chain
}

//Structure is the root container of a built molecule: a single model
//holding a single chain. Everything below it is append-only; nothing
//is ever removed or reordered.
type Structure struct {
	ID    string
	model *Model
}

//NewStructure returns an empty Structure with one model (number 0)
//containing one empty chain with the given chain ID.
func NewStructure(id, chainID string) *Structure {
	ch := &Chain{ID: chainID}
	return &Structure{ID: id, model: &Model{ID: 0, chain: ch}}
}

func (S *Structure) Model() *Model {
	if S == nil {
		panic(ErrNilStructure)
	}
	return S.model
}

//Chain is a shortcut to the only chain of the only model.
func (S *Structure) Chain() *Chain {
	return S.Model().Chain()
}

//NAtoms returns the total number of atoms in the structure.
func (S *Structure) NAtoms() int {
	n := 0
	ch := S.Chain()
	for i := 0; i < ch.Len(); i++ {
		n += ch.Residue(i).Len()
	}
	return n
}
