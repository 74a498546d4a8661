package geo

import (
	"fmt"
	"sort"
)

//The built-in monomer kinds. Their templates are assembled below from
//a shared standard or extended backbone plus whatever side system the
//kind carries. All numeric defaults can be overridden per call by
//copying the template (see Geometry) and editing its Defaults.

//standardBackbone returns a template with the classic N-CA-C(=O)
//peptide backbone and the usual parameter names. The caller fills in
//Kind, ResName and whatever side atoms the monomer has.
func standardBackbone() *Template {
	return &Template{
		Entry: [3]EntryStep{
			{Name: "N", Symbol: "N", LengthKey: "peptide_bond", AngleKey: "CA_C_N_angle", DihedralKey: "psi_im1"},
			{Name: "CA", Symbol: "C", LengthKey: "CA_N_length", AngleKey: "C_N_CA_angle", DihedralKey: "omega"},
			{Name: "C", Symbol: "C", LengthKey: "CA_C_length", AngleKey: "N_CA_C_angle", DihedralKey: "phi"},
		},
		Steps: []Step{
			{Op: Derive, Name: "O", Symbol: "O",
				Refs:      [3]Ref{{Name: "N"}, {Name: "CA"}, {Name: "C"}},
				LengthKey: "C_O_length", AngleKey: "CA_C_O_angle", DihedralKey: "N_CA_C_O_diangle"},
		},
		Tail:     [3]string{"N", "CA", "C"},
		PhiKey:   "phi",
		PsiKey:   "psi_im1",
		OmegaKey: "omega",
		Defaults: Params{
			"peptide_bond":     1.33,
			"CA_C_N_angle":     116.642992978143,
			"psi_im1":          140.0,
			"CA_N_length":      1.46,
			"C_N_CA_angle":     121.382215820277,
			"omega":            180.0,
			"CA_C_length":      1.52,
			"N_CA_C_angle":     110.8914,
			"phi":              -120.0,
			"C_O_length":       1.23,
			"CA_C_O_angle":     120.5117,
			"N_CA_C_O_diangle": 180.0,
		},
	}
}

func glycine() *Template {
	t := standardBackbone()
	t.Kind = "GLY"
	t.ResName = "GLY"
	return t
}

func alanine() *Template {
	t := standardBackbone()
	t.Kind = "ALA"
	t.ResName = "ALA"
	t.Defaults["N_CA_C_angle"] = 111.068
	t.Defaults["N_CA_C_O_diangle"] = -60.5
	t.Steps = append(t.Steps, Step{Op: Derive, Name: "CB", Symbol: "C",
		Refs:      [3]Ref{{Name: "N"}, {Name: "C"}, {Name: "CA"}},
		LengthKey: "CA_CB_length", AngleKey: "C_CA_CB_angle", DihedralKey: "N_C_CA_CB_diangle"})
	t.Defaults["CA_CB_length"] = 1.52
	t.Defaults["C_CA_CB_angle"] = 109.5
	t.Defaults["N_C_CA_CB_diangle"] = 122.6860
	return t
}

//extendedBackbone returns a template with the 7-atom extended backbone
//N-CD1-CG-NB-CA-C(=O) used by the non-natural monomers. The tail is
//NB-CA-C, so anything can follow an extended monomer.
func extendedBackbone() *Template {
	return &Template{
		Entry: [3]EntryStep{
			{Name: "N", Symbol: "N", LengthKey: "N_C_length", AngleKey: "N_C_CA_angle", DihedralKey: "N_C_CA_NB_diangle"},
			{Name: "CD1", Symbol: "C", LengthKey: "CD1_N_length", AngleKey: "CD1_N_C_angle", DihedralKey: "CD1_N_C_CA_diangle"},
			{Name: "CG", Symbol: "C", LengthKey: "CG_CD1_length", AngleKey: "CG_CD1_N_angle", DihedralKey: "CG_CD1_N_C_diangle"},
		},
		Steps: []Step{
			{Op: Derive, Name: "NB", Symbol: "N",
				Refs:      [3]Ref{{Name: "N"}, {Name: "CD1"}, {Name: "CG"}},
				LengthKey: "NB_CG_length", AngleKey: "NB_CG_CD1_angle", DihedralKey: "NB_CG_CD1_N_diangle"},
			{Op: Derive, Name: "CA", Symbol: "C",
				Refs:      [3]Ref{{Name: "CD1"}, {Name: "CG"}, {Name: "NB"}},
				LengthKey: "CA_NB_length", AngleKey: "CA_NB_CG_angle", DihedralKey: "CA_NB_CG_CD1_diangle"},
			{Op: Derive, Name: "C", Symbol: "C",
				Refs:      [3]Ref{{Name: "CG"}, {Name: "NB"}, {Name: "CA"}},
				LengthKey: "C_CA_length", AngleKey: "C_CA_NB_angle", DihedralKey: "C_CA_NB_CG_diangle"},
			{Op: Derive, Name: "O", Symbol: "O",
				Refs:      [3]Ref{{Name: "NB"}, {Name: "CA"}, {Name: "C"}},
				LengthKey: "C_O_length", AngleKey: "CA_C_O_angle", DihedralKey: "NB_CA_C_O_diangle"},
		},
		Tail:     [3]string{"NB", "CA", "C"},
		PhiKey:   "CG_CD1_N_C_diangle",
		PsiKey:   "N_C_CA_NB_diangle",
		OmegaKey: "CD1_N_C_CA_diangle",
		Defaults: Params{
			"N_C_length":           1.33,
			"N_C_CA_angle":         117.0,
			"N_C_CA_NB_diangle":    140.0,
			"CD1_N_length":         1.46,
			"CD1_N_C_angle":        121.4,
			"CD1_N_C_CA_diangle":   180.0,
			"CG_CD1_length":        1.52,
			"CG_CD1_N_angle":       111.0,
			"CG_CD1_N_C_diangle":   -120.0,
			"NB_CG_length":         1.47,
			"NB_CG_CD1_angle":      110.5,
			"NB_CG_CD1_N_diangle":  170.0,
			"CA_NB_length":         1.46,
			"CA_NB_CG_angle":       112.0,
			"CA_NB_CG_CD1_diangle": -75.0,
			"C_CA_length":          1.52,
			"C_CA_NB_angle":        111.0,
			"C_CA_NB_CG_diangle":   -60.0,
			"C_O_length":           1.23,
			"CA_C_O_angle":         120.5,
			"NB_CA_C_O_diangle":    -45.0,
		},
	}
}

func extendedBare() *Template {
	t := extendedBackbone()
	t.Kind = "AAB"
	t.ResName = "AAB"
	return t
}

//extendedRing is the extended backbone carrying the fused, chlorinated
//ring system hanging from the backbone NB.
func extendedRing() *Template {
	t := extendedBackbone()
	t.Kind = "AA"
	t.ResName = "AA"
	t.Steps = append(t.Steps,
		Step{Op: Derive, Name: "CE1", Symbol: "C",
			Refs:      [3]Ref{{Name: "NB"}, {Name: "CG"}, {Name: "CD1"}},
			LengthKey: "CE1_CD1_length", AngleKey: "CE1_CD1_CG_angle", DihedralKey: "CE1_CD1_CG_NB_diangle"},
		Step{Op: Derive, Name: "SG", Symbol: "S",
			Refs:      [3]Ref{{Name: "CD1"}, {Name: "CG"}, {Name: "NB"}},
			LengthKey: "NB_SG_length", AngleKey: "CG_NB_SG_angle", DihedralKey: "CD1_CG_NB_SG_diangle"},
		Step{Op: Derive, Name: "OD1", Symbol: "O",
			Refs:      [3]Ref{{Name: "CG"}, {Name: "NB"}, {Name: "SG"}},
			LengthKey: "OD1_SG_length", AngleKey: "OD1_SG_NB_angle", DihedralKey: "CG_NB_SG_OD1_diangle"},
		Step{Op: Derive, Name: "OD2", Symbol: "O",
			Refs:      [3]Ref{{Name: "CA"}, {Name: "NB"}, {Name: "SG"}},
			LengthKey: "OD2_SG_length", AngleKey: "OD2_SG_NB_angle", DihedralKey: "CA_NB_SG_OD2_diangle"},
		Step{Op: Derive, Name: "CD2", Symbol: "C",
			Refs:      [3]Ref{{Name: "CG"}, {Name: "NB"}, {Name: "SG"}},
			LengthKey: "SG_CD2_length", AngleKey: "NB_SG_CD2_angle", DihedralKey: "CG_NB_SG_CD2_diangle"},
		Step{Op: Derive, Name: "CE2", Symbol: "C",
			Refs:      [3]Ref{{Name: "NB"}, {Name: "SG"}, {Name: "CD2"}},
			LengthKey: "CD2_CE2_length", AngleKey: "SG_CD2_CE2_angle", DihedralKey: "NB_SG_CD2_CE2_diangle"},
		Step{Op: Derive, Name: "CE3", Symbol: "C",
			Refs:      [3]Ref{{Name: "NB"}, {Name: "SG"}, {Name: "CD2"}},
			LengthKey: "CD2_CE3_length", AngleKey: "SG_CD2_CE3_angle", DihedralKey: "NB_SG_CD2_CE3_diangle"},
		Step{Op: Derive, Name: "CZ1", Symbol: "C",
			Refs:      [3]Ref{{Name: "SG"}, {Name: "CD2"}, {Name: "CE2"}},
			LengthKey: "CE2_CZ1_length", AngleKey: "CD2_CE2_CZ1_angle", DihedralKey: "SG_CD2_CE2_CZ1_diangle"},
		Step{Op: Derive, Name: "CZ2", Symbol: "C",
			Refs:      [3]Ref{{Name: "SG"}, {Name: "CD2"}, {Name: "CE3"}},
			LengthKey: "CE3_CZ2_length", AngleKey: "CD2_CE3_CZ2_angle", DihedralKey: "SG_CD2_CE3_CZ2_diangle"},
		Step{Op: Derive, Name: "CH", Symbol: "C",
			Refs:      [3]Ref{{Name: "CD2"}, {Name: "CE2"}, {Name: "CZ1"}},
			LengthKey: "CZ1_CH_length", AngleKey: "CE2_CZ1_CH_angle", DihedralKey: "CD2_CE2_CZ1_CH_diangle"},
		Step{Op: Derive, Name: "CL17", Symbol: "CL",
			Refs:      [3]Ref{{Name: "CE2"}, {Name: "CZ1"}, {Name: "CH"}},
			LengthKey: "CH_CL17_length", AngleKey: "CZ1_CH_CL17_angle", DihedralKey: "CE2_CZ1_CH_CL17_diangle"},
	)
	side := Params{
		"CE1_CD1_length":          1.50,
		"CE1_CD1_CG_angle":        120.0,
		"CE1_CD1_CG_NB_diangle":   180.0,
		"NB_SG_length":            1.68,
		"CG_NB_SG_angle":          112.0,
		"CD1_CG_NB_SG_diangle":    -90.0,
		"OD1_SG_length":           1.44,
		"OD1_SG_NB_angle":         107.0,
		"CG_NB_SG_OD1_diangle":    170.0,
		"OD2_SG_length":           1.44,
		"OD2_SG_NB_angle":         107.0,
		"CA_NB_SG_OD2_diangle":    -45.0,
		"SG_CD2_length":           1.77,
		"NB_SG_CD2_angle":         103.0,
		"CG_NB_SG_CD2_diangle":    60.0,
		"CD2_CE2_length":          1.39,
		"SG_CD2_CE2_angle":        120.0,
		"NB_SG_CD2_CE2_diangle":   90.0,
		"CD2_CE3_length":          1.39,
		"SG_CD2_CE3_angle":        120.0,
		"NB_SG_CD2_CE3_diangle":   -90.0,
		"CE2_CZ1_length":          1.39,
		"CD2_CE2_CZ1_angle":       120.0,
		"SG_CD2_CE2_CZ1_diangle":  180.0,
		"CE3_CZ2_length":          1.39,
		"CD2_CE3_CZ2_angle":       120.0,
		"SG_CD2_CE3_CZ2_diangle":  180.0,
		"CZ1_CH_length":           1.39,
		"CE2_CZ1_CH_angle":        120.0,
		"CD2_CE2_CZ1_CH_diangle":  0.0,
		"CH_CL17_length":          1.73,
		"CZ1_CH_CL17_angle":       119.0,
		"CE2_CZ1_CH_CL17_diangle": 180.0,
	}
	for k, v := range side {
		t.Defaults[k] = v
	}
	return t
}

//extendedSulfonyl is the extended backbone carrying a sulfonyl side
//system on the backbone NB.
func extendedSulfonyl() *Template {
	t := extendedBackbone()
	t.Kind = "HFS"
	t.ResName = "HFS"
	t.Steps = append(t.Steps,
		Step{Op: Derive, Name: "S", Symbol: "S",
			Refs:      [3]Ref{{Name: "CD1"}, {Name: "CG"}, {Name: "NB"}},
			LengthKey: "S_NB_length", AngleKey: "S_NB_CG_angle", DihedralKey: "S_NB_CG_CD1_diangle"},
		Step{Op: Derive, Name: "O1", Symbol: "O",
			Refs:      [3]Ref{{Name: "CG"}, {Name: "NB"}, {Name: "S"}},
			LengthKey: "O1_S_length", AngleKey: "O1_S_NB_angle", DihedralKey: "O1_S_NB_CG_diangle"},
		Step{Op: Derive, Name: "O2", Symbol: "O",
			Refs:      [3]Ref{{Name: "CA"}, {Name: "NB"}, {Name: "S"}},
			LengthKey: "O2_S_length", AngleKey: "O2_S_NB_angle", DihedralKey: "O2_S_NB_CA_diangle"},
		Step{Op: Derive, Name: "CD2", Symbol: "C",
			Refs:      [3]Ref{{Name: "CG"}, {Name: "NB"}, {Name: "S"}},
			LengthKey: "CD2_S_length", AngleKey: "CD2_S_NB_angle", DihedralKey: "CD2_S_NB_CG_diangle"},
		Step{Op: Derive, Name: "CE1", Symbol: "C",
			Refs:      [3]Ref{{Name: "NB"}, {Name: "CG"}, {Name: "CD1"}},
			LengthKey: "CE1_CD1_length", AngleKey: "CE1_CD1_CG_angle", DihedralKey: "CE1_CD1_CG_NB_diangle"},
	)
	side := Params{
		"S_NB_length":           1.63,
		"S_NB_CG_angle":         113.0,
		"S_NB_CG_CD1_diangle":   -95.0,
		"O1_S_length":           1.43,
		"O1_S_NB_angle":         106.5,
		"O1_S_NB_CG_diangle":    50.0,
		"O2_S_length":           1.43,
		"O2_S_NB_angle":         106.5,
		"O2_S_NB_CA_diangle":    -55.0,
		"CD2_S_length":          1.77,
		"CD2_S_NB_angle":        103.5,
		"CD2_S_NB_CG_diangle":   175.0,
		"CE1_CD1_length":        1.50,
		"CE1_CD1_CG_angle":      120.0,
		"CE1_CD1_CG_NB_diangle": 180.0,
	}
	for k, v := range side {
		t.Defaults[k] = v
	}
	return t
}

//spacer16 is the 16-atom flexible spacer: three short amide segments
//ending in a carbonyl, tail C12-C13-C4.
func spacer16() *Template {
	return &Template{
		Kind:    "LNK",
		ResName: "LNK",
		Entry: [3]EntryStep{
			{Name: "N1", Symbol: "N", LengthKey: "N1_C_length", AngleKey: "N1_C_CA_angle", DihedralKey: "N1_C_CA_N_diangle"},
			{Name: "C5", Symbol: "C", LengthKey: "C5_N1_length", AngleKey: "C5_N1_C_angle", DihedralKey: "C5_N1_C_CA_diangle"},
			{Name: "C6", Symbol: "C", LengthKey: "C6_C5_length", AngleKey: "C6_C5_N1_angle", DihedralKey: "C6_C5_N1_C_diangle"},
		},
		Steps: []Step{
			{Op: Derive, Name: "C7", Symbol: "C",
				Refs:      [3]Ref{{Name: "N1"}, {Name: "C5"}, {Name: "C6"}},
				LengthKey: "C7_C6_length", AngleKey: "C7_C6_C5_angle", DihedralKey: "C7_C6_C5_N1_diangle"},
			{Op: Derive, Name: "C8", Symbol: "C",
				Refs:      [3]Ref{{Name: "C5"}, {Name: "C6"}, {Name: "C7"}},
				LengthKey: "C8_C7_length", AngleKey: "C8_C7_C6_angle", DihedralKey: "C8_C7_C6_C5_diangle"},
			{Op: Derive, Name: "O3", Symbol: "O",
				Refs:      [3]Ref{{Name: "C6"}, {Name: "C7"}, {Name: "C8"}},
				LengthKey: "O3_C8_length", AngleKey: "O3_C8_C7_angle", DihedralKey: "O3_C8_C7_C6_diangle"},
			{Op: Derive, Name: "N2", Symbol: "N",
				Refs:      [3]Ref{{Name: "C6"}, {Name: "C7"}, {Name: "C8"}},
				LengthKey: "N2_C8_length", AngleKey: "N2_C8_C7_angle", DihedralKey: "N2_C8_C7_C6_diangle"},
			{Op: Derive, Name: "C9", Symbol: "C",
				Refs:      [3]Ref{{Name: "C7"}, {Name: "C8"}, {Name: "N2"}},
				LengthKey: "C9_N2_length", AngleKey: "C9_N2_C8_angle", DihedralKey: "C9_N2_C8_C7_diangle"},
			{Op: Derive, Name: "C10", Symbol: "C",
				Refs:      [3]Ref{{Name: "C8"}, {Name: "N2"}, {Name: "C9"}},
				LengthKey: "C10_C9_length", AngleKey: "C10_C9_N2_angle", DihedralKey: "C10_C9_N2_C8_diangle"},
			{Op: Derive, Name: "O4", Symbol: "O",
				Refs:      [3]Ref{{Name: "N2"}, {Name: "C9"}, {Name: "C10"}},
				LengthKey: "O4_C10_length", AngleKey: "O4_C10_C9_angle", DihedralKey: "O4_C10_C9_N2_diangle"},
			{Op: Derive, Name: "N3", Symbol: "N",
				Refs:      [3]Ref{{Name: "N2"}, {Name: "C9"}, {Name: "C10"}},
				LengthKey: "N3_C10_length", AngleKey: "N3_C10_C9_angle", DihedralKey: "N3_C10_C9_N2_diangle"},
			{Op: Derive, Name: "C11", Symbol: "C",
				Refs:      [3]Ref{{Name: "C9"}, {Name: "C10"}, {Name: "N3"}},
				LengthKey: "C11_N3_length", AngleKey: "C11_N3_C10_angle", DihedralKey: "C11_N3_C10_C9_diangle"},
			{Op: Derive, Name: "C12", Symbol: "C",
				Refs:      [3]Ref{{Name: "C10"}, {Name: "N3"}, {Name: "C11"}},
				LengthKey: "C12_C11_length", AngleKey: "C12_C11_N3_angle", DihedralKey: "C12_C11_N3_C10_diangle"},
			{Op: Derive, Name: "C13", Symbol: "C",
				Refs:      [3]Ref{{Name: "N3"}, {Name: "C11"}, {Name: "C12"}},
				LengthKey: "C13_C12_length", AngleKey: "C13_C12_C11_angle", DihedralKey: "C13_C12_C11_N3_diangle"},
			{Op: Derive, Name: "C4", Symbol: "C",
				Refs:      [3]Ref{{Name: "C11"}, {Name: "C12"}, {Name: "C13"}},
				LengthKey: "C4_C13_length", AngleKey: "C4_C13_C12_angle", DihedralKey: "C4_C13_C12_C11_diangle"},
			{Op: Derive, Name: "O2", Symbol: "O",
				Refs:      [3]Ref{{Name: "C12"}, {Name: "C13"}, {Name: "C4"}},
				LengthKey: "O2_C4_length", AngleKey: "O2_C4_C13_angle", DihedralKey: "O2_C4_C13_C12_diangle"},
		},
		Tail:     [3]string{"C12", "C13", "C4"},
		PhiKey:   "C6_C5_N1_C_diangle",
		PsiKey:   "N1_C_CA_N_diangle",
		OmegaKey: "C5_N1_C_CA_diangle",
		Defaults: Params{
			"N1_C_length":            1.33,
			"N1_C_CA_angle":          117.0,
			"N1_C_CA_N_diangle":      140.0,
			"C5_N1_length":           1.46,
			"C5_N1_C_angle":          121.4,
			"C5_N1_C_CA_diangle":     180.0,
			"C6_C5_length":           1.52,
			"C6_C5_N1_angle":         111.0,
			"C6_C5_N1_C_diangle":     -120.0,
			"C7_C6_length":           1.52,
			"C7_C6_C5_angle":         109.5,
			"C7_C6_C5_N1_diangle":    180.0,
			"C8_C7_length":           1.52,
			"C8_C7_C6_angle":         112.0,
			"C8_C7_C6_C5_diangle":    180.0,
			"O3_C8_length":           1.23,
			"O3_C8_C7_angle":         121.0,
			"O3_C8_C7_C6_diangle":    0.0,
			"N2_C8_length":           1.33,
			"N2_C8_C7_angle":         114.5,
			"N2_C8_C7_C6_diangle":    180.0,
			"C9_N2_length":           1.46,
			"C9_N2_C8_angle":         121.7,
			"C9_N2_C8_C7_diangle":    180.0,
			"C10_C9_length":          1.52,
			"C10_C9_N2_angle":        110.5,
			"C10_C9_N2_C8_diangle":   180.0,
			"O4_C10_length":          1.23,
			"O4_C10_C9_angle":        121.0,
			"O4_C10_C9_N2_diangle":   0.0,
			"N3_C10_length":          1.33,
			"N3_C10_C9_angle":        114.5,
			"N3_C10_C9_N2_diangle":   180.0,
			"C11_N3_length":          1.46,
			"C11_N3_C10_angle":       121.7,
			"C11_N3_C10_C9_diangle":  180.0,
			"C12_C11_length":         1.52,
			"C12_C11_N3_angle":       110.5,
			"C12_C11_N3_C10_diangle": 180.0,
			"C13_C12_length":         1.52,
			"C13_C12_C11_angle":      109.5,
			"C13_C12_C11_N3_diangle": 180.0,
			"C4_C13_length":          1.52,
			"C4_C13_C12_angle":       112.0,
			"C4_C13_C12_C11_diangle": -170.0,
			"O2_C4_length":           1.23,
			"O2_C4_C13_angle":        120.5,
			"O2_C4_C13_C12_diangle":  0.0,
		},
	}
}

//spacer26 is the 26-atom spacer that ends in a standard CA-C(=O)
//junction (tail C14-CA-C) and carries a sulfonamide branch on its
//second segment.
func spacer26() *Template {
	return &Template{
		Kind:    "LFS",
		ResName: "LFS",
		Entry: [3]EntryStep{
			{Name: "N", Symbol: "N", LengthKey: "NL_C_length", AngleKey: "NL_C_CA_angle", DihedralKey: "NL_C_CA_N_diangle"},
			{Name: "C1", Symbol: "C", LengthKey: "C1_NL_length", AngleKey: "C1_NL_C_angle", DihedralKey: "C1_NL_C_CA_diangle"},
			{Name: "C2", Symbol: "C", LengthKey: "C2_C1_length", AngleKey: "C2_C1_NL_angle", DihedralKey: "C2_C1_NL_C_diangle"},
		},
		Steps: []Step{
			{Op: Derive, Name: "C3", Symbol: "C",
				Refs:      [3]Ref{{Name: "N"}, {Name: "C1"}, {Name: "C2"}},
				LengthKey: "C3_C2_length", AngleKey: "C3_C2_C1_angle", DihedralKey: "C3_C2_C1_NL_diangle"},
			{Op: Derive, Name: "C4", Symbol: "C",
				Refs:      [3]Ref{{Name: "C1"}, {Name: "C2"}, {Name: "C3"}},
				LengthKey: "C4_C3_length", AngleKey: "C4_C3_C2_angle", DihedralKey: "C4_C3_C2_C1_diangle"},
			{Op: Derive, Name: "O1", Symbol: "O",
				Refs:      [3]Ref{{Name: "C2"}, {Name: "C3"}, {Name: "C4"}},
				LengthKey: "O1_C4_length", AngleKey: "O1_C4_C3_angle", DihedralKey: "O1_C4_C3_C2_diangle"},
			{Op: Derive, Name: "N2", Symbol: "N",
				Refs:      [3]Ref{{Name: "C2"}, {Name: "C3"}, {Name: "C4"}},
				LengthKey: "N2_C4_length", AngleKey: "N2_C4_C3_angle", DihedralKey: "N2_C4_C3_C2_diangle"},
			{Op: Derive, Name: "C5", Symbol: "C",
				Refs:      [3]Ref{{Name: "C3"}, {Name: "C4"}, {Name: "N2"}},
				LengthKey: "C5_N2_length", AngleKey: "C5_N2_C4_angle", DihedralKey: "C5_N2_C4_C3_diangle"},
			{Op: Derive, Name: "C6", Symbol: "C",
				Refs:      [3]Ref{{Name: "C4"}, {Name: "N2"}, {Name: "C5"}},
				LengthKey: "C6_C5_length", AngleKey: "C6_C5_N2_angle", DihedralKey: "C6_C5_N2_C4_diangle"},
			{Op: Derive, Name: "N3", Symbol: "N",
				Refs:      [3]Ref{{Name: "N2"}, {Name: "C5"}, {Name: "C6"}},
				LengthKey: "N3_C6_length", AngleKey: "N3_C6_C5_angle", DihedralKey: "N3_C6_C5_N2_diangle"},
			{Op: Derive, Name: "C7", Symbol: "C",
				Refs:      [3]Ref{{Name: "C5"}, {Name: "C6"}, {Name: "N3"}},
				LengthKey: "C7_N3_length", AngleKey: "C7_N3_C6_angle", DihedralKey: "C7_N3_C6_C5_diangle"},
			{Op: Derive, Name: "C8", Symbol: "C",
				Refs:      [3]Ref{{Name: "C6"}, {Name: "N3"}, {Name: "C7"}},
				LengthKey: "C8_C7_length", AngleKey: "C8_C7_N3_angle", DihedralKey: "C8_C7_N3_C6_diangle"},
			{Op: Derive, Name: "O2", Symbol: "O",
				Refs:      [3]Ref{{Name: "N3"}, {Name: "C7"}, {Name: "C8"}},
				LengthKey: "O2_C8_length", AngleKey: "O2_C8_C7_angle", DihedralKey: "O2_C8_C7_N3_diangle"},
			{Op: Derive, Name: "N4", Symbol: "N",
				Refs:      [3]Ref{{Name: "N3"}, {Name: "C7"}, {Name: "C8"}},
				LengthKey: "N4_C8_length", AngleKey: "N4_C8_C7_angle", DihedralKey: "N4_C8_C7_N3_diangle"},
			{Op: Derive, Name: "C13", Symbol: "C",
				Refs:      [3]Ref{{Name: "C7"}, {Name: "C8"}, {Name: "N4"}},
				LengthKey: "C13_N4_length", AngleKey: "C13_N4_C8_angle", DihedralKey: "C13_N4_C8_C7_diangle"},
			{Op: Derive, Name: "C14", Symbol: "C",
				Refs:      [3]Ref{{Name: "C8"}, {Name: "N4"}, {Name: "C13"}},
				LengthKey: "C14_C13_length", AngleKey: "C14_C13_N4_angle", DihedralKey: "C14_C13_N4_C8_diangle"},
			{Op: Derive, Name: "CA", Symbol: "C",
				Refs:      [3]Ref{{Name: "N4"}, {Name: "C13"}, {Name: "C14"}},
				LengthKey: "CA_C14_length", AngleKey: "CA_C14_C13_angle", DihedralKey: "CA_C14_C13_N4_diangle"},
			{Op: Derive, Name: "C", Symbol: "C",
				Refs:      [3]Ref{{Name: "C13"}, {Name: "C14"}, {Name: "CA"}},
				LengthKey: "C_CA_length", AngleKey: "C_CA_C14_angle", DihedralKey: "C_CA_C14_C13_diangle"},
			{Op: Derive, Name: "O", Symbol: "O",
				Refs:      [3]Ref{{Name: "C14"}, {Name: "CA"}, {Name: "C"}},
				LengthKey: "O_C_length", AngleKey: "O_C_CA_angle", DihedralKey: "O_C_CA_C14_diangle"},
			//sulfonamide branch on the second segment
			{Op: Derive, Name: "C9", Symbol: "C",
				Refs:      [3]Ref{{Name: "C3"}, {Name: "C4"}, {Name: "N2"}},
				LengthKey: "C9_N2_length", AngleKey: "C9_N2_C4_angle", DihedralKey: "C9_N2_C4_C3_diangle"},
			{Op: Derive, Name: "C10", Symbol: "C",
				Refs:      [3]Ref{{Name: "C4"}, {Name: "N2"}, {Name: "C9"}},
				LengthKey: "C10_C9_length", AngleKey: "C10_C9_N2_angle", DihedralKey: "C10_C9_N2_C4_diangle"},
			{Op: Derive, Name: "C11", Symbol: "C",
				Refs:      [3]Ref{{Name: "N2"}, {Name: "C9"}, {Name: "C10"}},
				LengthKey: "C11_C10_length", AngleKey: "C11_C10_C9_angle", DihedralKey: "C11_C10_C9_N2_diangle"},
			{Op: Derive, Name: "S", Symbol: "S",
				Refs:      [3]Ref{{Name: "C5"}, {Name: "C6"}, {Name: "N3"}},
				LengthKey: "S_N3_length", AngleKey: "S_N3_C6_angle", DihedralKey: "S_N3_C6_C5_diangle"},
			{Op: Derive, Name: "O4", Symbol: "O",
				Refs:      [3]Ref{{Name: "C7"}, {Name: "N3"}, {Name: "S"}},
				LengthKey: "O4_S_length", AngleKey: "O4_S_N3_angle", DihedralKey: "O4_S_N3_C7_diangle"},
			{Op: Derive, Name: "O5", Symbol: "O",
				Refs:      [3]Ref{{Name: "C6"}, {Name: "N3"}, {Name: "S"}},
				LengthKey: "O5_S_length", AngleKey: "O5_S_N3_angle", DihedralKey: "O5_S_N3_C6_diangle"},
			{Op: Derive, Name: "C12", Symbol: "C",
				Refs:      [3]Ref{{Name: "C6"}, {Name: "N3"}, {Name: "S"}},
				LengthKey: "C12_S_length", AngleKey: "C12_S_N3_angle", DihedralKey: "C12_S_N3_C6_diangle"},
		},
		Tail:     [3]string{"C14", "CA", "C"},
		PhiKey:   "C2_C1_NL_C_diangle",
		PsiKey:   "NL_C_CA_N_diangle",
		OmegaKey: "C1_NL_C_CA_diangle",
		Defaults: Params{
			"NL_C_length":           1.33,
			"NL_C_CA_angle":         117.0,
			"NL_C_CA_N_diangle":     140.0,
			"C1_NL_length":          1.46,
			"C1_NL_C_angle":         121.4,
			"C1_NL_C_CA_diangle":    180.0,
			"C2_C1_length":          1.52,
			"C2_C1_NL_angle":        111.0,
			"C2_C1_NL_C_diangle":    -120.0,
			"C3_C2_length":          1.52,
			"C3_C2_C1_angle":        109.5,
			"C3_C2_C1_NL_diangle":   180.0,
			"C4_C3_length":          1.52,
			"C4_C3_C2_angle":        112.0,
			"C4_C3_C2_C1_diangle":   180.0,
			"O1_C4_length":          1.23,
			"O1_C4_C3_angle":        121.0,
			"O1_C4_C3_C2_diangle":   0.0,
			"N2_C4_length":          1.35,
			"N2_C4_C3_angle":        114.5,
			"N2_C4_C3_C2_diangle":   180.0,
			"C5_N2_length":          1.46,
			"C5_N2_C4_angle":        120.0,
			"C5_N2_C4_C3_diangle":   170.0,
			"C6_C5_length":          1.52,
			"C6_C5_N2_angle":        110.5,
			"C6_C5_N2_C4_diangle":   180.0,
			"N3_C6_length":          1.46,
			"N3_C6_C5_angle":        111.5,
			"N3_C6_C5_N2_diangle":   180.0,
			"C7_N3_length":          1.46,
			"C7_N3_C6_angle":        115.0,
			"C7_N3_C6_C5_diangle":   -100.0,
			"C8_C7_length":          1.52,
			"C8_C7_N3_angle":        112.0,
			"C8_C7_N3_C6_diangle":   180.0,
			"O2_C8_length":          1.23,
			"O2_C8_C7_angle":        121.0,
			"O2_C8_C7_N3_diangle":   0.0,
			"N4_C8_length":          1.33,
			"N4_C8_C7_angle":        114.5,
			"N4_C8_C7_N3_diangle":   180.0,
			"C13_N4_length":         1.46,
			"C13_N4_C8_angle":       121.7,
			"C13_N4_C8_C7_diangle":  180.0,
			"C14_C13_length":        1.52,
			"C14_C13_N4_angle":      110.5,
			"C14_C13_N4_C8_diangle": 180.0,
			"CA_C14_length":         1.53,
			"CA_C14_C13_angle":      111.0,
			"CA_C14_C13_N4_diangle": 180.0,
			"C_CA_length":           1.52,
			"C_CA_C14_angle":        111.0,
			"C_CA_C14_C13_diangle":  -60.0,
			"O_C_length":            1.23,
			"O_C_CA_angle":          120.5,
			"O_C_CA_C14_diangle":    -45.0,
			"C9_N2_length":          1.46,
			"C9_N2_C4_angle":        120.0,
			"C9_N2_C4_C3_diangle":   -15.0,
			"C10_C9_length":         1.52,
			"C10_C9_N2_angle":       112.5,
			"C10_C9_N2_C4_diangle":  90.0,
			"C11_C10_length":        1.52,
			"C11_C10_C9_angle":      111.0,
			"C11_C10_C9_N2_diangle": 180.0,
			"S_N3_length":           1.63,
			"S_N3_C6_angle":         116.0,
			"S_N3_C6_C5_diangle":    75.0,
			"O4_S_length":           1.43,
			"O4_S_N3_angle":         106.5,
			"O4_S_N3_C7_diangle":    -50.0,
			"O5_S_length":           1.43,
			"O5_S_N3_angle":         106.5,
			"O5_S_N3_C6_diangle":    170.0,
			"C12_S_length":          1.77,
			"C12_S_N3_angle":        104.0,
			"C12_S_N3_C6_diangle":   60.0,
		},
	}
}

var catalog map[string]*Template

func init() {
	catalog = make(map[string]*Template)
	for _, f := range []func() *Template{glycine, alanine, extendedBare,
		extendedRing, extendedSulfonyl, spacer16, spacer26} {
		t := f()
		if err := t.Validate(); err != nil {
			panic(err.Error())
		}
		catalog[t.Kind] = t
	}
}

//Geometry returns a fresh copy of the catalog template for the given
//monomer kind, so the caller can edit its Defaults freely. An unknown
//kind is an error: there is no sensible fallback geometry.
func Geometry(kind string) (*Template, error) {
	t, ok := catalog[kind]
	if !ok {
		return nil, Error{fmt.Sprintf("unknown monomer kind %q", kind), []string{"Geometry"}}
	}
	return t.Copy(), nil
}

//Kinds returns the sorted list of monomer kinds in the catalog.
func Kinds() []string {
	ret := make([]string, 0, len(catalog))
	for k := range catalog {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
