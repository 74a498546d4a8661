package builder

import (
	"math"
	"testing"

	pep "github.com/pepbuild/pepbuild"
	"github.com/pepbuild/pepbuild/geo"
	"github.com/pepbuild/pepbuild/v3"
)

func coord(r *pep.Residue, name string, Te *testing.T) *v3.Matrix {
	at := r.ByName(name)
	if at == nil {
		Te.Fatalf("Residue %d has no atom %s", r.ID, name)
	}
	return at.Coord
}

func expectNear(got *v3.Matrix, x, y, z float64, what string, Te *testing.T) {
	d := math.Sqrt(math.Pow(got.At(0, 0)-x, 2) + math.Pow(got.At(0, 1)-y, 2) +
		math.Pow(got.At(0, 2)-z, 2))
	if d > 1e-6 {
		Te.Errorf("%s: got (%.9f %.9f %.9f), want (%.9f %.9f %.9f)", what,
			got.At(0, 0), got.At(0, 1), got.At(0, 2), x, y, z)
	}
}

//The first residue must come out in the canonical pose: CA at the
//origin, C on the positive x axis at bond-length distance, N in the
//xy plane with positive y, forming the tabulated N-CA-C angle.
func TestSeedPose(Te *testing.T) {
	s, err := Initialize("GLY")
	if err != nil {
		Te.Fatal(err)
	}
	if s.Chain().Len() != 1 {
		Te.Fatalf("Wrong number of residues: %d", s.Chain().Len())
	}
	r := s.Chain().Residue(0)
	if r.Len() != 4 || r.ID != 1 {
		Te.Fatalf("Wrong first residue: %d atoms, ID %d", r.Len(), r.ID)
	}
	expectNear(coord(r, "CA", Te), 0, 0, 0, "CA", Te)
	expectNear(coord(r, "C", Te), 1.52, 0, 0, "C", Te)
	n := coord(r, "N", Te)
	ang := 110.8914 * pep.Deg2Rad
	expectNear(n, 1.46*math.Cos(ang), 1.46*math.Sin(ang), 0, "N", Te)
	if n.At(0, 1) <= 0 {
		Te.Errorf("Seed N is not on the positive y side")
	}
	expectNear(coord(r, "O", Te), 2.144488589, -1.059676367, 0, "O", Te)
}

//Two glycines with phi=-60, psi=-40 and the default omega. The
//expected coordinates were computed independently from the same
//internal-coordinate tables.
func TestBuildGolden(Te *testing.T) {
	s, err := Build([]string{"GLY", "GLY"}, []float64{-60}, []float64{-40}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	r1 := s.Chain().Residue(0)
	r2 := s.Chain().Residue(1)
	expectNear(coord(r1, "N", Te), -0.520632748, 1.364016694, 0, "N1", Te)
	expectNear(coord(r1, "CA", Te), 0, 0, 0, "CA1", Te)
	expectNear(coord(r1, "C", Te), 1.52, 0, 0, "C1", Te)
	expectNear(coord(r1, "O", Te), 2.144488589, -1.059676367, 0, "O1", Te)
	expectNear(coord(r2, "N", Te), 2.116411777, 0.910656736, -0.764131731, "N2", Te)
	expectNear(coord(r2, "CA", Te), 3.571420126, 1.003061844, -0.841668824, "CA2", Te)
	expectNear(coord(r2, "C", Te), 4.170259295, 1.285820042, 0.526483014, "C2", Te)
	expectNear(coord(r2, "O", Te), 5.387307077, 1.398536867, 0.664285823, "O2", Te)
}

//The torsions requested at append time must be measurable on the
//final coordinates.
func TestTorsionControl(Te *testing.T) {
	phi, psi := -57.8, -47.0
	s, err := Build([]string{"GLY", "ALA", "GLY"}, []float64{phi, phi}, []float64{psi, psi}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	ch := s.Chain()
	for i := 1; i < ch.Len(); i++ {
		prev := ch.Residue(i - 1)
		cur := ch.Residue(i)
		gotpsi := pep.Dihedral(coord(prev, "N", Te), coord(prev, "CA", Te),
			coord(prev, "C", Te), coord(cur, "N", Te)) * pep.Rad2Deg
		gotomega := pep.Dihedral(coord(prev, "CA", Te), coord(prev, "C", Te),
			coord(cur, "N", Te), coord(cur, "CA", Te)) * pep.Rad2Deg
		gotphi := pep.Dihedral(coord(prev, "C", Te), coord(cur, "N", Te),
			coord(cur, "CA", Te), coord(cur, "C", Te)) * pep.Rad2Deg
		if math.Abs(gotpsi-psi) > 1e-6 {
			Te.Errorf("Junction %d: psi is %f, want %f", i, gotpsi, psi)
		}
		if math.Abs(gotphi-phi) > 1e-6 {
			Te.Errorf("Junction %d: phi is %f, want %f", i, gotphi, phi)
		}
		if math.Abs(math.Abs(gotomega)-180) > 1e-6 {
			Te.Errorf("Junction %d: omega is %f, want 180", i, gotomega)
		}
	}
}

//An omega at or below -361 keeps the default; a real value overrides it.
func TestOmegaSentinel(Te *testing.T) {
	base, err := Build([]string{"GLY", "GLY"}, []float64{-60}, []float64{-40}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	sent, err := Build([]string{"GLY", "GLY"}, []float64{-60}, []float64{-40}, []float64{UseDefaultOmega})
	if err != nil {
		Te.Fatal(err)
	}
	ca1 := coord(base.Chain().Residue(1), "CA", Te)
	ca2 := coord(sent.Chain().Residue(1), "CA", Te)
	diff := v3.Zeros(1)
	diff.Sub(ca1, ca2)
	if diff.Norm(2) > 1e-9 {
		Te.Errorf("Sentinel omega changed the geometry")
	}
	cis, err := Build([]string{"GLY", "GLY"}, []float64{-60}, []float64{-40}, []float64{0})
	if err != nil {
		Te.Fatal(err)
	}
	ca3 := coord(cis.Chain().Residue(1), "CA", Te)
	diff.Sub(ca1, ca3)
	if diff.Norm(2) < 1e-3 {
		Te.Errorf("Explicit omega did not change the geometry")
	}
	gotomega := pep.Dihedral(coord(cis.Chain().Residue(0), "CA", Te),
		coord(cis.Chain().Residue(0), "C", Te),
		coord(cis.Chain().Residue(1), "N", Te), ca3) * pep.Rad2Deg
	if math.Abs(gotomega) > 1e-6 {
		Te.Errorf("Wrong omega: %f, want 0", gotomega)
	}
}

func TestInvalidArguments(Te *testing.T) {
	if _, err := Initialize("ZZZ"); err == nil {
		Te.Errorf("Initialize accepted an unknown kind")
	}
	if _, err := Initialize(42); err == nil {
		Te.Errorf("Initialize accepted an int")
	}
	s, err := Initialize("GLY")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := AddResidue(s, "GLY", -60); err == nil {
		Te.Errorf("AddResidue accepted a single angle")
	}
	if _, err := Build([]string{"GLY", "GLY"}, []float64{-60}, nil, nil); err == nil {
		Te.Errorf("Build accepted phi without psi")
	}
	if _, err := Build([]string{"GLY", "GLY"}, []float64{-60, -60}, []float64{-40, -40}, nil); err == nil {
		Te.Errorf("Build accepted mis-sized angle slices")
	}
}

func TestReferenceResidue(Te *testing.T) {
	if _, err := ReferenceResidue(nil); err == nil {
		Te.Errorf("ReferenceResidue accepted a nil structure")
	}
	empty := pep.NewStructure("test", "A")
	if _, err := ReferenceResidue(empty); err == nil {
		Te.Errorf("ReferenceResidue accepted an empty structure")
	}
	//a residue not grown by this package, with no usable tail
	foreign := pep.NewResidue("GLY", "GLY", 1)
	foreign.Tail = [3]string{"N", "CA", "C"}
	foreign.AddAtom(&pep.Atom{Name: "N", Symbol: "N", Coord: point(0, 0, 0)})
	empty.Chain().AddResidue(foreign)
	if _, err := ReferenceResidue(empty); err == nil {
		Te.Errorf("ReferenceResidue accepted a residue without its tail atoms")
	}
	s, err := Build([]string{"GLY", "ALA"}, nil, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	ref, err := ReferenceResidue(s)
	if err != nil {
		Te.Fatal(err)
	}
	if ref.ID != 2 || ref.Kind != "ALA" {
		Te.Errorf("Wrong reference residue: ID %d kind %s", ref.ID, ref.Kind)
	}
}

//Every catalog kind must seed a chain, follow any other kind, and
//produce finite coordinates with the full expected atom count.
func TestAllKinds(Te *testing.T) {
	for _, kind := range geo.Kinds() {
		t, err := geo.Geometry(kind)
		if err != nil {
			Te.Fatal(err)
		}
		s, err := Build([]string{"GLY", kind, "GLY"}, nil, nil, nil)
		if err != nil {
			Te.Fatalf("Kind %s failed to build: %v", kind, err)
		}
		mid := s.Chain().Residue(1)
		if mid.Len() != len(t.AtomNames()) {
			Te.Errorf("Kind %s placed %d atoms, want %d", kind, mid.Len(), len(t.AtomNames()))
		}
		for i := 0; i < mid.Len(); i++ {
			at := mid.Atom(i)
			for j := 0; j < 3; j++ {
				if math.IsNaN(at.Coord.At(0, j)) || math.IsInf(at.Coord.At(0, j), 0) {
					Te.Errorf("Kind %s: atom %s has bad coordinate %f", kind, at.Name, at.Coord.At(0, j))
				}
			}
		}
		if _, err := Initialize(kind); err != nil {
			Te.Errorf("Kind %s cannot seed a chain: %v", kind, err)
		}
	}
}

//A Link step copies coordinates from the previous residue instead of
//computing new ones.
func TestLinkStep(Te *testing.T) {
	t, err := geo.Geometry("GLY")
	if err != nil {
		Te.Fatal(err)
	}
	t.Kind = "GLX"
	t.Steps = append(t.Steps, geo.Step{Op: geo.Link, Name: "NX", Symbol: "N", From: "N"})
	if err := t.Validate(); err != nil {
		Te.Fatal(err)
	}
	//a link can't open a chain
	if _, err := Initialize(t); err == nil {
		Te.Errorf("Initialize accepted a template with a link step")
	}
	s, err := Initialize("GLY")
	if err != nil {
		Te.Fatal(err)
	}
	s, err = AddResidue(s, t)
	if err != nil {
		Te.Fatal(err)
	}
	prevN := coord(s.Chain().Residue(0), "N", Te)
	linked := coord(s.Chain().Residue(1), "NX", Te)
	diff := v3.Zeros(1)
	diff.Sub(prevN, linked)
	if diff.Norm(2) > 1e-12 {
		Te.Errorf("Linked atom moved: %v vs %v", linked, prevN)
	}
	//and it must be a copy, not a shared container
	linked.Set(0, 0, 99)
	if prevN.At(0, 0) == 99 {
		Te.Errorf("Linked atom shares coordinates with its source")
	}
}

//Building from explicit templates with edited defaults must agree
//with the equivalent by-kind build.
func TestBuildFromTemplates(Te *testing.T) {
	t1, err := geo.Geometry("GLY")
	if err != nil {
		Te.Fatal(err)
	}
	t2, err := geo.Geometry("GLY")
	if err != nil {
		Te.Fatal(err)
	}
	t2.Defaults["phi"] = -60
	t2.Defaults["psi_im1"] = -40
	s, err := BuildFromTemplates([]*geo.Template{t1, t2})
	if err != nil {
		Te.Fatal(err)
	}
	want, err := Build([]string{"GLY", "GLY"}, []float64{-60}, []float64{-40}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		a := s.Chain().Residue(i)
		b := want.Chain().Residue(i)
		for j := 0; j < a.Len(); j++ {
			diff := v3.Zeros(1)
			diff.Sub(a.Atom(j).Coord, b.Atom(j).Coord)
			if diff.Norm(2) > 1e-9 {
				Te.Errorf("Residue %d atom %s differs between the two builds", i+1, a.Atom(j).Name)
			}
		}
	}
}
