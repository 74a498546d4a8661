package geo

import (
	"fmt"
)

//StepOp selects what a body step does.
type StepOp int

const (
	//Derive places a new atom with one internal-coordinate
	//construction from three reference atoms.
	Derive StepOp = iota
	//Link copies the coordinates of an atom of the previous residue
	//under a new name in the current one. No geometry is computed.
	Link
)

//Ref names one reference atom of a Derive step. When Prev is set the
//name is looked up in the previous residue of the chain; otherwise it
//must name an atom already placed in the residue under construction.
type Ref struct {
	Name string
	Prev bool
}

//EntryStep describes one of the three atoms that open a residue. The
//three parameter keys give the bond length, bond angle and dihedral
//used when the residue is appended to an existing chain; when the
//residue opens a new chain the same length and angle keys feed the
//seed formulas instead, and the dihedral keys are unused.
type EntryStep struct {
	Name   string
	Symbol string
	//keys into the parameter bundle
	LengthKey   string
	AngleKey    string
	DihedralKey string
}

//Step is one body step of a template.
type Step struct {
	Op     StepOp
	Name   string
	Symbol string
	//Derive only: the three reference atoms and the bundle keys for
	//the internal coordinates of the new atom relative to them.
	Refs        [3]Ref
	LengthKey   string
	AngleKey    string
	DihedralKey string
	//Link only: the name the copied atom has in the previous residue.
	From string
}

//Template is the declarative recipe for one monomer kind.
type Template struct {
	//Kind is the identifier the catalog and the chain builder know
	//the monomer by. ResName is the (up to 3 characters) residue
	//name written to PDB output.
	Kind    string
	ResName string
	//Entry holds the three atoms that form the junction with the
	//previous residue, in placement order. Entry[1] is the seed
	//origin, Entry[2] the seed x-axis atom and Entry[0] the seed
	//in-plane atom.
	Entry [3]EntryStep
	Steps []Step
	//Tail names, in order, the three trailing backbone atoms this
	//kind exports as the reference frame of the next residue.
	Tail [3]string
	//The bundle keys that the per-call phi, psi and omega overrides
	//replace.
	PhiKey   string
	PsiKey   string
	OmegaKey string
	Defaults Params
}

//Copy returns a deep copy of the template. The catalog hands out
//copies so a caller can adjust Defaults without changing the catalog.
func (T *Template) Copy() *Template {
	ret := &Template{
		Kind:     T.Kind,
		ResName:  T.ResName,
		Entry:    T.Entry,
		Tail:     T.Tail,
		PhiKey:   T.PhiKey,
		PsiKey:   T.PsiKey,
		OmegaKey: T.OmegaKey,
		Defaults: T.Defaults.Copy(),
	}
	ret.Steps = make([]Step, len(T.Steps))
	copy(ret.Steps, T.Steps)
	return ret
}

//AtomNames returns the names of all atoms the template places, in
//placement order.
func (T *Template) AtomNames() []string {
	ret := make([]string, 0, 3+len(T.Steps))
	for _, e := range T.Entry {
		ret = append(ret, e.Name)
	}
	for _, s := range T.Steps {
		ret = append(ret, s.Name)
	}
	return ret
}

//Validate checks the internal consistency of the template: every atom
//name is non-empty and unique, every in-residue reference points to an
//atom placed in an earlier step (strict topological order), every
//parameter key appears in Defaults, the tail names are atoms of the
//template, and the phi/psi/omega keys are in Defaults. References
//into the previous residue can't be checked here, since the previous
//residue is only known at build time.
func (T *Template) Validate() error {
	if T.Kind == "" {
		return Error{"template has no kind tag", []string{"Template.Validate"}}
	}
	placed := make(map[string]bool, 3+len(T.Steps))
	needKey := func(key, what string) error {
		if key == "" {
			return Error{fmt.Sprintf("template %s: %s has no parameter key", T.Kind, what), []string{"Template.Validate"}}
		}
		if _, ok := T.Defaults[key]; !ok {
			return Error{fmt.Sprintf("template %s: key %q (%s) missing from Defaults", T.Kind, key, what), []string{"Template.Validate"}}
		}
		return nil
	}
	addName := func(name string) error {
		if name == "" {
			return Error{fmt.Sprintf("template %s: step with empty atom name", T.Kind), []string{"Template.Validate"}}
		}
		if placed[name] {
			return Error{fmt.Sprintf("template %s: atom %s defined twice", T.Kind, name), []string{"Template.Validate"}}
		}
		placed[name] = true
		return nil
	}
	for _, e := range T.Entry {
		if err := addName(e.Name); err != nil {
			return err
		}
		if e.Symbol == "" {
			return Error{fmt.Sprintf("template %s: entry atom %s has no element symbol", T.Kind, e.Name), []string{"Template.Validate"}}
		}
		what := fmt.Sprintf("entry atom %s", e.Name)
		if err := needKey(e.LengthKey, what+" length"); err != nil {
			return err
		}
		if err := needKey(e.AngleKey, what+" angle"); err != nil {
			return err
		}
		if err := needKey(e.DihedralKey, what+" dihedral"); err != nil {
			return err
		}
	}
	for _, s := range T.Steps {
		switch s.Op {
		case Derive:
			for _, r := range s.Refs {
				if r.Name == "" {
					return Error{fmt.Sprintf("template %s: step %s has an empty reference", T.Kind, s.Name), []string{"Template.Validate"}}
				}
				if !r.Prev && !placed[r.Name] {
					return Error{fmt.Sprintf("template %s: step %s references %s before it is placed", T.Kind, s.Name, r.Name), []string{"Template.Validate"}}
				}
			}
			what := fmt.Sprintf("step %s", s.Name)
			if err := needKey(s.LengthKey, what+" length"); err != nil {
				return err
			}
			if err := needKey(s.AngleKey, what+" angle"); err != nil {
				return err
			}
			if err := needKey(s.DihedralKey, what+" dihedral"); err != nil {
				return err
			}
		case Link:
			if s.From == "" {
				return Error{fmt.Sprintf("template %s: link step %s names no source atom", T.Kind, s.Name), []string{"Template.Validate"}}
			}
		default:
			return Error{fmt.Sprintf("template %s: step %s has unknown operation %d", T.Kind, s.Name, s.Op), []string{"Template.Validate"}}
		}
		if s.Symbol == "" {
			return Error{fmt.Sprintf("template %s: step %s has no element symbol", T.Kind, s.Name), []string{"Template.Validate"}}
		}
		if err := addName(s.Name); err != nil {
			return err
		}
	}
	for _, t := range T.Tail {
		if !placed[t] {
			return Error{fmt.Sprintf("template %s: tail atom %s is not placed by the template", T.Kind, t), []string{"Template.Validate"}}
		}
	}
	for key, what := range map[string]string{T.PhiKey: "phi", T.PsiKey: "psi", T.OmegaKey: "omega"} {
		if err := needKey(key, what+" override"); err != nil {
			return err
		}
	}
	return nil
}
