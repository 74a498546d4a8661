/*
 * files.go, part of pepbuild.
 *
 * Copyright 2021 The pepbuild developers
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as published by
 * the Free Software Foundation, either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package pep

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

//PDBWrite writes the structure S in PDB format to the writer out. The
//single model of the structure is wrapped in a MODEL/ENDMDL pair and
//atoms are numbered sequentially from 1 in construction order.
func PDBWrite(out io.Writer, S *Structure) error {
	if S == nil {
		return CError{string(ErrNilStructure), []string{"PDBWrite"}}
	}
	fmt.Fprint(out, "REMARK     WRITTEN WITH PEPBUILD :-)\n")
	fmt.Fprintf(out, "MODEL %d\n", S.Model().ID)
	ch := S.Chain()
	serial := 1
	for i := 0; i < ch.Len(); i++ {
		res := ch.Residue(i)
		for j := 0; j < res.Len(); j++ {
			at := res.Atom(j)
			if at.Coord == nil {
				return CError{fmt.Sprintf("Atom %s of residue %d has no coordinates", at.Name, res.ID), []string{"PDBWrite"}}
			}
			var err error
			if len(at.Name) < 4 {
				_, err = fmt.Fprintf(out, "%-6s%5d  %-3s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n",
					"ATOM", serial, at.Name, res.Name, ch.ID, res.ID,
					at.Coord.At(0, 0), at.Coord.At(0, 1), at.Coord.At(0, 2),
					at.Occupancy, at.Bfactor, at.Symbol)
			} else if len(at.Name) == 4 {
				_, err = fmt.Fprintf(out, "%-6s%5d %4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n",
					"ATOM", serial, at.Name, res.Name, ch.ID, res.ID,
					at.Coord.At(0, 0), at.Coord.At(0, 1), at.Coord.At(0, 2),
					at.Occupancy, at.Bfactor, at.Symbol)
			} else {
				err = CError{fmt.Sprintf("Can't print PDB line for atom %s", at.Name), []string{"PDBWrite"}}
			}
			if err != nil {
				return CError{err.Error(), []string{"PDBWrite"}}
			}
			serial++
		}
	}
	fmt.Fprint(out, "TER\n")
	fmt.Fprint(out, "ENDMDL\n")
	fmt.Fprint(out, "END\n")
	return nil
}

//PDBFileWrite writes the structure S to a PDB file with the given name.
func PDBFileWrite(pdbname string, S *Structure) error {
	out, err := os.Create(pdbname)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "PDBFileWrite"}}
	}
	defer out.Close()
	err = PDBWrite(out, S)
	if err != nil {
		return errDecorate(err, "PDBFileWrite")
	}
	return nil
}

//PDBGzFileWrite writes the structure S to a gzip-compressed PDB file
//with the given name. Built structures with large monomers get long,
//very regular files, so they compress well.
func PDBGzFileWrite(pdbname string, S *Structure) error {
	out, err := os.Create(pdbname)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "PDBGzFileWrite"}}
	}
	defer out.Close()
	gz := gzip.NewWriter(out)
	err = PDBWrite(gz, S)
	if err != nil {
		gz.Close()
		return errDecorate(err, "PDBGzFileWrite")
	}
	err = gz.Close()
	if err != nil {
		return CError{err.Error(), []string{"gzip.Writer.Close", "PDBGzFileWrite"}}
	}
	return nil
}
