package builder

import (
	"fmt"
	"math"

	pep "github.com/pepbuild/pepbuild"
	"github.com/pepbuild/pepbuild/geo"
	"github.com/pepbuild/pepbuild/v3"
)

//UseDefaultOmega is a sentinel for the omega argument of AddResidue
//and Build: any value at or below -361 (i.e. outside the meaningful
//dihedral range) means "keep the template's default omega". Real
//omega values are always in [-360, 360].
const UseDefaultOmega = -370.0

//resolve turns the kind-or-template argument of the public entry
//points into a validated template. Strings are catalog lookups; a
//*geo.Template is used as given, so callers can pass fully custom
//parameter bundles.
func resolve(residue interface{}) (*geo.Template, error) {
	switch r := residue.(type) {
	case string:
		t, err := geo.Geometry(r)
		if err != nil {
			return nil, errDecorate(err, "resolve")
		}
		return t, nil
	case *geo.Template:
		if err := r.Validate(); err != nil {
			return nil, errDecorate(err, "resolve")
		}
		return r, nil
	default:
		return nil, Error{fmt.Sprintf("residue argument must be a kind string or a *geo.Template, not %T", residue), []string{"resolve"}}
	}
}

//Initialize returns a new Structure containing a single residue built
//from the given monomer kind (or custom template) in the canonical
//seed pose: the second entry atom at the origin, the third on the
//positive x axis, and the first in the xy plane with positive y.
func Initialize(residue interface{}) (*pep.Structure, error) {
	t, err := resolve(residue)
	if err != nil {
		return nil, errDecorate(err, "Initialize")
	}
	res, err := seed(t, 1)
	if err != nil {
		return nil, errDecorate(err, "Initialize")
	}
	s := pep.NewStructure("pep", "A")
	s.Chain().AddResidue(res)
	return s, nil
}

//ReferenceResidue returns the residue whose tail will act as the
//geometric reference frame for the next append: the last residue of
//the chain. It fails when the structure holds no residues, or when
//the last residue doesn't contain the tail atoms it promises (which
//means the structure wasn't grown by this package).
func ReferenceResidue(s *pep.Structure) (*pep.Residue, error) {
	if s == nil {
		return nil, Error{"nil structure", []string{"ReferenceResidue"}}
	}
	last := s.Chain().Last()
	if last == nil {
		return nil, Error{"structure contains no residues", []string{"ReferenceResidue"}}
	}
	for _, name := range last.Tail {
		if name == "" || last.ByName(name) == nil {
			return nil, Error{fmt.Sprintf("residue %d (%s) has no usable tail: atom %q missing", last.ID, last.Name, name), []string{"ReferenceResidue"}}
		}
	}
	return last, nil
}

//AddResidue appends one residue of the given monomer kind (or custom
//template) to the structure, using the tail of the current last
//residue as the reference frame. The optional angles are, in order,
//phi, psi and omega, in degrees: pass none to build with the
//template's defaults, two to set phi and psi, or three to also set
//omega. An omega at or below -361 (see UseDefaultOmega) keeps the
//template's default. The modified structure is returned.
func AddResidue(s *pep.Structure, residue interface{}, angles ...float64) (*pep.Structure, error) {
	t, err := resolve(residue)
	if err != nil {
		return nil, errDecorate(err, "AddResidue")
	}
	prev, err := ReferenceResidue(s)
	if err != nil {
		return nil, errDecorate(err, "AddResidue")
	}
	par := t.Defaults.Copy()
	switch len(angles) {
	case 0:
	case 2:
		par[t.PhiKey] = angles[0]
		par[t.PsiKey] = angles[1]
	case 3:
		par[t.PhiKey] = angles[0]
		par[t.PsiKey] = angles[1]
		if angles[2] > -361 {
			par[t.OmegaKey] = angles[2]
		}
	default:
		return nil, Error{fmt.Sprintf("AddResidue takes 0, 2 (phi, psi) or 3 (phi, psi, omega) angles, got %d", len(angles)), []string{"AddResidue"}}
	}
	res, err := grow(t, par, prev)
	if err != nil {
		return nil, errDecorate(err, "AddResidue")
	}
	s.Chain().AddResidue(res)
	return s, nil
}

//Build constructs a whole chain from a sequence of monomer kinds.
//phi, psi and omega give the torsions of each junction, so they must
//be nil (use the defaults everywhere) or hold len(seq)-1 values;
//omega may be nil even when phi and psi are given. Angle i of each
//slice is applied when appending seq[i+1].
func Build(seq []string, phi, psi, omega []float64) (*pep.Structure, error) {
	if len(seq) == 0 {
		return nil, Error{"empty sequence", []string{"Build"}}
	}
	if (phi == nil) != (psi == nil) {
		return nil, Error{"phi and psi must be both nil or both given", []string{"Build"}}
	}
	if phi != nil && (len(phi) != len(seq)-1 || len(psi) != len(seq)-1) {
		return nil, Error{fmt.Sprintf("need %d phi/psi values for %d residues", len(seq)-1, len(seq)), []string{"Build"}}
	}
	if omega != nil && len(omega) != len(seq)-1 {
		return nil, Error{fmt.Sprintf("need %d omega values for %d residues", len(seq)-1, len(seq)), []string{"Build"}}
	}
	s, err := Initialize(seq[0])
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	for i := 1; i < len(seq); i++ {
		switch {
		case phi == nil:
			s, err = AddResidue(s, seq[i])
		case omega == nil:
			s, err = AddResidue(s, seq[i], phi[i-1], psi[i-1])
		default:
			s, err = AddResidue(s, seq[i], phi[i-1], psi[i-1], omega[i-1])
		}
		if err != nil {
			return nil, errDecorate(err, "Build")
		}
	}
	return s, nil
}

//BuildFromTemplates constructs a chain from ready-made templates, one
//per residue, with each template's own Defaults as the parameters.
//This is the entry point for fully custom geometry: edit the bundles
//before calling.
func BuildFromTemplates(ts []*geo.Template) (*pep.Structure, error) {
	if len(ts) == 0 {
		return nil, Error{"empty template list", []string{"BuildFromTemplates"}}
	}
	s, err := Initialize(ts[0])
	if err != nil {
		return nil, errDecorate(err, "BuildFromTemplates")
	}
	for _, t := range ts[1:] {
		s, err = AddResidue(s, t)
		if err != nil {
			return nil, errDecorate(err, "BuildFromTemplates")
		}
	}
	return s, nil
}

//seed builds the first residue of a chain in the canonical pose. The
//entry atoms are placed by formula; everything else goes through the
//same body steps as an appended residue.
func seed(t *geo.Template, id int) (*pep.Residue, error) {
	par := t.Defaults.Copy()
	lx, err := par.Get(t.Entry[2].LengthKey)
	if err != nil {
		return nil, errDecorate(err, "seed")
	}
	lplane, err := par.Get(t.Entry[1].LengthKey)
	if err != nil {
		return nil, errDecorate(err, "seed")
	}
	ang, err := par.Get(t.Entry[2].AngleKey)
	if err != nil {
		return nil, errDecorate(err, "seed")
	}
	res := pep.NewResidue(t.Kind, t.ResName, id)
	res.Tail = t.Tail
	placed := make(map[string]*v3.Matrix, 3+len(t.Steps))
	coords := [3]*v3.Matrix{
		point(lplane*math.Cos(pep.Deg2Rad*ang), lplane*math.Sin(pep.Deg2Rad*ang), 0),
		point(0, 0, 0),
		point(lx, 0, 0),
	}
	for i, e := range t.Entry {
		placed[e.Name] = coords[i]
		res.AddAtom(&pep.Atom{Name: e.Name, Symbol: e.Symbol, Coord: coords[i], Occupancy: 1.0})
	}
	err = bodySteps(t, par, nil, res, placed)
	if err != nil {
		return nil, errDecorate(err, "seed")
	}
	return res, nil
}

//grow builds a residue appended after prev. The three entry atoms are
//derived from a sliding window that starts as the previous residue's
//tail triple and shifts by one with each entry atom placed.
func grow(t *geo.Template, par geo.Params, prev *pep.Residue) (*pep.Residue, error) {
	res := pep.NewResidue(t.Kind, t.ResName, prev.ID+1)
	res.Tail = t.Tail
	placed := make(map[string]*v3.Matrix, 3+len(t.Steps))
	var win [3]*v3.Matrix
	for i, name := range prev.Tail {
		at := prev.ByName(name)
		if at == nil {
			return nil, Error{fmt.Sprintf("tail atom %s missing from residue %d", name, prev.ID), []string{"grow"}}
		}
		win[i] = at.Coord
	}
	for _, e := range t.Entry {
		L, err := par.Get(e.LengthKey)
		if err != nil {
			return nil, errDecorate(err, "grow")
		}
		ang, err := par.Get(e.AngleKey)
		if err != nil {
			return nil, errDecorate(err, "grow")
		}
		di, err := par.Get(e.DihedralKey)
		if err != nil {
			return nil, errDecorate(err, "grow")
		}
		p := pep.Place(win[0], win[1], win[2], L, ang, di)
		placed[e.Name] = p
		res.AddAtom(&pep.Atom{Name: e.Name, Symbol: e.Symbol, Coord: p, Occupancy: 1.0})
		win[0], win[1], win[2] = win[1], win[2], p
	}
	err := bodySteps(t, par, prev, res, placed)
	if err != nil {
		return nil, errDecorate(err, "grow")
	}
	return res, nil
}

//bodySteps runs the body steps of a template, appending one atom per
//step to res. prev is nil when the residue opens the chain, in which
//case steps referencing the previous residue fail.
func bodySteps(t *geo.Template, par geo.Params, prev *pep.Residue, res *pep.Residue, placed map[string]*v3.Matrix) error {
	lookup := func(r geo.Ref) (*v3.Matrix, error) {
		if r.Prev {
			if prev == nil {
				return nil, Error{fmt.Sprintf("template %s: step needs previous-residue atom %s, but the residue opens the chain", t.Kind, r.Name), []string{"bodySteps"}}
			}
			at := prev.ByName(r.Name)
			if at == nil {
				return nil, Error{fmt.Sprintf("template %s: previous residue %d has no atom %s", t.Kind, prev.ID, r.Name), []string{"bodySteps"}}
			}
			return at.Coord, nil
		}
		p, ok := placed[r.Name]
		if !ok {
			return nil, Error{fmt.Sprintf("template %s: reference atom %s not placed yet", t.Kind, r.Name), []string{"bodySteps"}}
		}
		return p, nil
	}
	for _, st := range t.Steps {
		var p *v3.Matrix
		switch st.Op {
		case geo.Link:
			if prev == nil {
				return Error{fmt.Sprintf("template %s: link step %s outside a growing chain", t.Kind, st.Name), []string{"bodySteps"}}
			}
			src := prev.ByName(st.From)
			if src == nil {
				return Error{fmt.Sprintf("template %s: link step %s: previous residue %d has no atom %s", t.Kind, st.Name, prev.ID, st.From), []string{"bodySteps"}}
			}
			p = v3.Zeros(1)
			p.Copy(src.Coord)
		case geo.Derive:
			refA, err := lookup(st.Refs[0])
			if err != nil {
				return err
			}
			refB, err := lookup(st.Refs[1])
			if err != nil {
				return err
			}
			refC, err := lookup(st.Refs[2])
			if err != nil {
				return err
			}
			L, err := par.Get(st.LengthKey)
			if err != nil {
				return errDecorate(err, "bodySteps")
			}
			ang, err := par.Get(st.AngleKey)
			if err != nil {
				return errDecorate(err, "bodySteps")
			}
			di, err := par.Get(st.DihedralKey)
			if err != nil {
				return errDecorate(err, "bodySteps")
			}
			p = pep.Place(refA, refB, refC, L, ang, di)
		default:
			return Error{fmt.Sprintf("template %s: step %s has unknown operation", t.Kind, st.Name), []string{"bodySteps"}}
		}
		placed[st.Name] = p
		res.AddAtom(&pep.Atom{Name: st.Name, Symbol: st.Symbol, Coord: p, Occupancy: 1.0})
	}
	return nil
}

func point(x, y, z float64) *v3.Matrix {
	p := v3.Zeros(1)
	p.Set(0, 0, x)
	p.Set(0, 1, y)
	p.Set(0, 2, z)
	return p
}
