package geo

import (
	"sort"
	"testing"
)

func TestCatalog(Te *testing.T) {
	kinds := Kinds()
	if !sort.StringsAreSorted(kinds) {
		Te.Errorf("Kinds() is not sorted: %v", kinds)
	}
	for _, want := range []string{"GLY", "ALA", "AAB", "AA", "HFS", "LNK", "LFS"} {
		t, err := Geometry(want)
		if err != nil {
			Te.Fatalf("Catalog kind %s missing: %v", want, err)
		}
		if err := t.Validate(); err != nil {
			Te.Errorf("Catalog template %s does not validate: %v", want, err)
		}
	}
	_, err := Geometry("XXX")
	if err == nil {
		Te.Errorf("Geometry accepted an unknown kind")
	}
}

func TestGeometryReturnsCopy(Te *testing.T) {
	a, err := Geometry("GLY")
	if err != nil {
		Te.Fatal(err)
	}
	a.Defaults["phi"] = 77.7
	b, err := Geometry("GLY")
	if err != nil {
		Te.Fatal(err)
	}
	if b.Defaults["phi"] == 77.7 {
		Te.Errorf("Editing a returned template leaked into the catalog")
	}
}

func TestTemplateAtomCounts(Te *testing.T) {
	counts := map[string]int{
		"GLY": 4, "ALA": 5, "AAB": 7, "AA": 18, "HFS": 12, "LNK": 16, "LFS": 26,
	}
	for kind, want := range counts {
		t, err := Geometry(kind)
		if err != nil {
			Te.Fatal(err)
		}
		if got := len(t.AtomNames()); got != want {
			Te.Errorf("Kind %s places %d atoms, want %d", kind, got, want)
		}
	}
}

func TestValidateRejectsForwardReference(Te *testing.T) {
	t, _ := Geometry("GLY")
	//make O reference an atom placed after it
	t.Steps = append(t.Steps, Step{Op: Derive, Name: "CB", Symbol: "C",
		Refs:      [3]Ref{{Name: "N"}, {Name: "C"}, {Name: "CA"}},
		LengthKey: "CA_C_length", AngleKey: "N_CA_C_angle", DihedralKey: "phi"})
	t.Steps[0].Refs[0].Name = "CB"
	if err := t.Validate(); err == nil {
		Te.Errorf("Validate accepted a forward reference")
	}
}

func TestValidateRejectsMissingKey(Te *testing.T) {
	t, _ := Geometry("GLY")
	delete(t.Defaults, "C_O_length")
	if err := t.Validate(); err == nil {
		Te.Errorf("Validate accepted a step keyed to a missing parameter")
	}
}

func TestValidateRejectsDuplicateAtom(Te *testing.T) {
	t, _ := Geometry("GLY")
	t.Steps = append(t.Steps, Step{Op: Derive, Name: "O", Symbol: "O",
		Refs:      [3]Ref{{Name: "N"}, {Name: "CA"}, {Name: "C"}},
		LengthKey: "C_O_length", AngleKey: "CA_C_O_angle", DihedralKey: "N_CA_C_O_diangle"})
	if err := t.Validate(); err == nil {
		Te.Errorf("Validate accepted a duplicate atom name")
	}
}

func TestValidateRejectsBadTail(Te *testing.T) {
	t, _ := Geometry("GLY")
	t.Tail[2] = "CZ"
	if err := t.Validate(); err == nil {
		Te.Errorf("Validate accepted a tail atom the template never places")
	}
}

func TestParamsCopyAndGet(Te *testing.T) {
	p := Params{"a": 1.0}
	q := p.Copy()
	q["a"] = 2.0
	if p["a"] != 1.0 {
		Te.Errorf("Copy did not detach the bundle")
	}
	if _, err := p.Get("b"); err == nil {
		Te.Errorf("Get invented a value for a missing key")
	}
	v, err := p.Get("a")
	if err != nil || v != 1.0 {
		Te.Errorf("Get failed on a present key: %v %v", v, err)
	}
}
