package builder

import (
	"math"
	"testing"

	pep "github.com/pepbuild/pepbuild"
	"github.com/pepbuild/pepbuild/v3"
)

func TestCapGolden(Te *testing.T) {
	s, err := Build([]string{"GLY", "GLY"}, []float64{-60}, []float64{-40}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	s, err = AddTerminalOXT(s)
	if err != nil {
		Te.Fatal(err)
	}
	last := s.Chain().Last()
	if last.Len() != 5 {
		Te.Fatalf("Wrong atom count after capping: %d", last.Len())
	}
	expectNear(coord(last, "OXT", Te), 3.445274971, 1.405444358, 1.512884430, "OXT", Te)
	//only the last residue is touched
	if s.Chain().Residue(0).ByName("OXT") != nil {
		Te.Errorf("Capping touched an interior residue")
	}
}

func TestCapGeometry(Te *testing.T) {
	s, err := Build([]string{"ALA", "ALA", "ALA"}, []float64{-57, -57}, []float64{-47, -47}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	s, err = AddTerminalOXT(s, 1.31)
	if err != nil {
		Te.Fatal(err)
	}
	last := s.Chain().Last()
	c := coord(last, "C", Te)
	oxt := coord(last, "OXT", Te)
	diff := v3.Zeros(1)
	diff.Sub(oxt, c)
	if math.Abs(diff.Norm(2)-1.31) > 1e-6 {
		Te.Errorf("Wrong C-OXT bond length: %f", diff.Norm(2))
	}
	//OXT sits opposite the carbonyl oxygen: the two dihedrals differ
	//by 180 degrees
	n := coord(last, "N", Te)
	ca := coord(last, "CA", Te)
	o := coord(last, "O", Te)
	dO := pep.Dihedral(n, ca, c, o) * pep.Rad2Deg
	dOXT := pep.Dihedral(n, ca, c, oxt) * pep.Rad2Deg
	sep := math.Abs(dO - dOXT)
	if math.Abs(sep-180) > 1e-4 {
		Te.Errorf("OXT is not opposite O: dihedrals %f and %f", dO, dOXT)
	}
}

//A second cap adds a second OXT: the operation does not check for an
//existing one.
func TestCapNotIdempotent(Te *testing.T) {
	s, err := Build([]string{"GLY", "GLY"}, nil, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		s, err = AddTerminalOXT(s)
		if err != nil {
			Te.Fatal(err)
		}
	}
	last := s.Chain().Last()
	oxts := 0
	for i := 0; i < last.Len(); i++ {
		if last.Atom(i).Name == "OXT" {
			oxts++
		}
	}
	if oxts != 2 {
		Te.Errorf("Expected 2 OXT atoms after capping twice, got %d", oxts)
	}
}

func TestCapNeedsBackbone(Te *testing.T) {
	s, err := Build([]string{"GLY", "LNK"}, nil, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	//the spacer's tail has no N/CA/C/O backbone to cap
	if _, err := AddTerminalOXT(s); err == nil {
		Te.Errorf("Capped a residue without a standard backbone")
	}
	if _, err := AddTerminalOXT(nil); err == nil {
		Te.Errorf("Capped a nil structure")
	}
}
