package builder

import (
	pep "github.com/pepbuild/pepbuild"
	"github.com/pepbuild/pepbuild/v3"
)

//AddTerminalOXT appends the C-terminal carboxylate oxygen (OXT) to the
//last residue of the structure, which must end in a standard
//N/CA/C/O backbone. The optional argument overrides the C-OXT bond
//length (1.23 by default). The OXT is placed against the measured
//geometry of the residue, not the template values it was built with:
//the bond angle is the measured CA-C-O angle, and the dihedral is the
//measured N-CA-C-O dihedral flipped by 180 degrees, to put OXT
//opposite the carbonyl oxygen.
//
//Calling AddTerminalOXT twice adds a second OXT atom; the function
//does not check for an existing one.
func AddTerminalOXT(s *pep.Structure, bond ...float64) (*pep.Structure, error) {
	length := 1.23
	if len(bond) > 0 {
		length = bond[0]
	}
	ref, err := ReferenceResidue(s)
	if err != nil {
		return nil, errDecorate(err, "AddTerminalOXT")
	}
	n := ref.ByName("N")
	ca := ref.ByName("CA")
	c := ref.ByName("C")
	o := ref.ByName("O")
	if n == nil || ca == nil || c == nil || o == nil {
		return nil, Error{"capping needs an N/CA/C/O backbone in the last residue", []string{"AddTerminalOXT"}}
	}
	v1 := v3.Zeros(1)
	v2 := v3.Zeros(1)
	v1.Sub(ca.Coord, c.Coord)
	v2.Sub(o.Coord, c.Coord)
	angle := pep.Angle(v1, v2) * pep.Rad2Deg
	di := pep.Dihedral(n.Coord, ca.Coord, c.Coord, o.Coord) * pep.Rad2Deg
	oxtdi := di - 180
	if di < 0 {
		oxtdi = di + 180
	}
	oxt := pep.Place(n.Coord, ca.Coord, c.Coord, length, angle, oxtdi)
	ref.AddAtom(&pep.Atom{Name: "OXT", Symbol: "O", Coord: oxt, Occupancy: 1.0})
	return s, nil
}
