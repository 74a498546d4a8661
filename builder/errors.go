package builder

//Error is the error type of the package. Same shape as the root
//package CError: a message plus a decoration trail.
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

type decorator interface {
	Error() string
	Decorate(string) []string
}

//errDecorate decorates any error of this module with the caller's name.
func errDecorate(err error, caller string) error {
	err2, ok := err.(decorator)
	if !ok {
		return Error{err.Error(), []string{caller}}
	}
	err2.Decorate(caller)
	return err2
}
