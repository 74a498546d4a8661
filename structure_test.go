package pep

import (
	"testing"
)

func smallChain() *Structure {
	//three "residues" with a standard backbone in arbitrary but
	//fixed positions
	s := NewStructure("test", "A")
	coords := [][3][3]float64{
		{{0, 0, 0}, {1.5, 0, 0}, {2.1, 1.3, 0}},
		{{3.4, 1.5, 0.2}, {4.3, 2.6, 0.5}, {5.7, 2.2, 0.9}},
		{{6.6, 3.2, 1.1}, {8.0, 3.0, 1.5}, {8.8, 4.2, 1.9}},
	}
	for i, c := range coords {
		r := NewResidue("GLY", "GLY", i+1)
		r.Tail = [3]string{"N", "CA", "C"}
		names := []string{"N", "CA", "C"}
		symbols := []string{"N", "C", "C"}
		for j := range names {
			r.AddAtom(&Atom{Name: names[j], Symbol: symbols[j],
				Coord: vec(c[j][0], c[j][1], c[j][2]), Occupancy: 1.0})
		}
		s.Chain().AddResidue(r)
	}
	return s
}

func TestStructureTraversal(Te *testing.T) {
	s := smallChain()
	ch := s.Chain()
	if ch.Len() != 3 {
		Te.Fatalf("Wrong number of residues: %d", ch.Len())
	}
	if s.NAtoms() != 9 {
		Te.Errorf("Wrong number of atoms: %d", s.NAtoms())
	}
	for i := 0; i < ch.Len(); i++ {
		r := ch.Residue(i)
		if r.ID != i+1 {
			Te.Errorf("Residue %d has ID %d", i, r.ID)
		}
		//atoms come back in insertion order
		if r.Atom(0).Name != "N" || r.Atom(1).Name != "CA" || r.Atom(2).Name != "C" {
			Te.Errorf("Wrong atom order in residue %d: %v", r.ID, r.Names())
		}
	}
	if ch.Last() != ch.Residue(2) {
		Te.Errorf("Last() did not return the last residue")
	}
	if ch.Residue(1).ByName("CB") != nil {
		Te.Errorf("ByName invented an atom")
	}
}

func TestAtomCopy(Te *testing.T) {
	at := &Atom{Name: "CA", Symbol: "C", Coord: vec(1, 2, 3), Occupancy: 1.0}
	cp := at.Copy()
	cp.Coord.Set(0, 0, 9)
	if at.Coord.At(0, 0) != 1 {
		Te.Errorf("Copy shares coordinates with the original")
	}
	if cp.Name != "CA" || cp.Symbol != "C" {
		Te.Errorf("Copy lost identity: %v", cp)
	}
}

func TestBackboneDihedrals(Te *testing.T) {
	s := smallChain()
	rama, err := BackboneDihedrals(s)
	if err != nil {
		Te.Fatal(err)
	}
	//only the middle residue has both neighbors
	if len(rama) != 1 {
		Te.Fatalf("Wrong number of (phi, psi) pairs: %d", len(rama))
	}
	ch := s.Chain()
	phi := Dihedral(ch.Residue(0).ByName("C").Coord, ch.Residue(1).ByName("N").Coord,
		ch.Residue(1).ByName("CA").Coord, ch.Residue(1).ByName("C").Coord) * Rad2Deg
	psi := Dihedral(ch.Residue(1).ByName("N").Coord, ch.Residue(1).ByName("CA").Coord,
		ch.Residue(1).ByName("C").Coord, ch.Residue(2).ByName("N").Coord) * Rad2Deg
	if rama[0][0] != phi || rama[0][1] != psi {
		Te.Errorf("Got (%f, %f), want (%f, %f)", rama[0][0], rama[0][1], phi, psi)
	}
}
