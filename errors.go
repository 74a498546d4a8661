/*
 * errors.go, part of pepbuild.
 *
 * Copyright 2021 The pepbuild developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package pep

//Error is the interface implemented by the errors of this package and
//its subpackages. Decorate adds the name of the caller to the error's
//decoration slice and returns the resulting slice, so the path an
//error took while bubbling up can be recovered.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete error type of the package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of
//the error, and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that err implements Error, decorates it with the
//caller's name and returns it. Using it on any other error is a bug in
//the calling code, and panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics. It satisfies the error
//interface, but for errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilData         = PanicMsg("pepbuild: nil data given")
	ErrNilAtom         = PanicMsg("pepbuild: nil atom given")
	ErrNilStructure    = PanicMsg("pepbuild: nil structure given")
	ErrIndexOutOfRange = PanicMsg("pepbuild: index out of range")
)
