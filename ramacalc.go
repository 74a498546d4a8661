package pep

import (
	"fmt"
)

//RamaSet holds the atoms needed to measure the phi and psi dihedrals
//of one residue: the carbonyl carbon of the previous residue, the
//N, CA and C of the residue itself, and the amide nitrogen of the
//following one.
type RamaSet struct {
	Cprev   *Atom
	N       *Atom
	Ca      *Atom
	C       *Atom
	Npost   *Atom
	MolID   int
	Molname string
}

//RamaList walks the chain of S and collects a RamaSet for every
//residue with a standard N/CA/C backbone that sits between a residue
//ending in C and a residue starting with N. Residues that don't fit
//that shape (linkers, extended backbones) are skipped, not an error.
func RamaList(S *Structure) ([]RamaSet, error) {
	if S == nil {
		return nil, CError{string(ErrNilStructure), []string{"RamaList"}}
	}
	ch := S.Chain()
	ret := make([]RamaSet, 0, ch.Len())
	for i := 1; i < ch.Len()-1; i++ {
		prev := ch.Residue(i - 1)
		cur := ch.Residue(i)
		post := ch.Residue(i + 1)
		Cprev := prev.ByName("C")
		N := cur.ByName("N")
		Ca := cur.ByName("CA")
		C := cur.ByName("C")
		Npost := post.ByName("N")
		if Cprev == nil || N == nil || Ca == nil || C == nil || Npost == nil {
			continue
		}
		if prev.ID != cur.ID-1 || post.ID != cur.ID+1 {
			return nil, CError{fmt.Sprintf("Incorrect backbone numbering around residue %d", cur.ID), []string{"RamaList"}}
		}
		ret = append(ret, RamaSet{Cprev, N, Ca, C, Npost, cur.ID, cur.Name})
	}
	return ret, nil
}

//RamaCalc obtains the values for the phi and psi dihedrals indicated
//in dihedrals. The angles are in *degrees*. It returns a slice of
//2-element slices, one for the phi, the next for the psi dihedral.
func RamaCalc(dihedrals []RamaSet) ([][]float64, error) {
	if dihedrals == nil {
		return nil, CError{string(ErrNilData), []string{"RamaCalc"}}
	}
	Rama := make([][]float64, 0, len(dihedrals))
	for _, j := range dihedrals {
		phi := Dihedral(j.Cprev.Coord, j.N.Coord, j.Ca.Coord, j.C.Coord)
		psi := Dihedral(j.N.Coord, j.Ca.Coord, j.C.Coord, j.Npost.Coord)
		temp := []float64{phi * Rad2Deg, psi * Rad2Deg}
		Rama = append(Rama, temp)
	}
	return Rama, nil
}

//BackboneDihedrals measures the (phi, psi) pairs, in degrees, of every
//interior standard-backbone residue of S. It is the composition of
//RamaList and RamaCalc.
func BackboneDihedrals(S *Structure) ([][]float64, error) {
	l, err := RamaList(S)
	if err != nil {
		return nil, errDecorate(err, "BackboneDihedrals")
	}
	r, err := RamaCalc(l)
	if err != nil {
		return nil, errDecorate(err, "BackboneDihedrals")
	}
	return r, nil
}
