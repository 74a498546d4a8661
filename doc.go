/*
 * doc.go, part of pepbuild.
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

//Package pep provides the structural containers (Structure, Model,
//Chain, Residue, Atom), internal-coordinate atom placement, geometric
//measurement and PDB output used to construct 3D models of peptides
//and peptide-like oligomers from bond lengths, bond angles and
//dihedral angles.
//
//The higher-level machinery lives in the subpackages: geo holds the
//monomer templates and their parameter bundles, builder grows chains
//residue by residue, and chemplot draws Ramachandran maps of the
//result. The subpackage v3 holds the coordinate container everything
//else is built on.
//
//Errors in this package (and its subpackages) implement the Error
//interface declared in errors.go, so callers can Decorate() them with
//the call stack as they bubble up. Panics are reserved for fundamental
//misuse, such as nil or mis-shaped coordinate containers.
package pep
