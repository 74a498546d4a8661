package geo

import "fmt"

//Params is a named bundle of geometric parameters: bond lengths in
//angstroms, bond angles and dihedral angles in degrees, all keyed by
//the conventional atom-sequence name (say, "N_CA_C_angle").
type Params map[string]float64

//Copy returns an independent copy of the bundle.
func (P Params) Copy() Params {
	ret := make(Params, len(P))
	for k, v := range P {
		ret[k] = v
	}
	return ret
}

//Get returns the value for the given key, or an error when the bundle
//doesn't contain it. A missing key means the template and its bundle
//disagree, so the caller should give up rather than guess a value.
func (P Params) Get(key string) (float64, error) {
	v, ok := P[key]
	if !ok {
		return 0, Error{fmt.Sprintf("parameter %q missing from bundle", key), []string{"Params.Get"}}
	}
	return v, nil
}

//Error is the error type of the package. It mirrors the root package
//CError (message plus decoration trail); having a local copy keeps geo
//importable on its own.
type Error struct {
	msg  string
	deco []string
}

func (err Error) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of
//the error, and returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
