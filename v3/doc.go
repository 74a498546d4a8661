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

//Package v3 implements a simple container for 3D cartesian coordinates,
//as a thin wrapper over the gonum Dense matrix restricted to 3 columns.
//A set of N points in space is an Nx3 Matrix; a single point is a 1x3
//Matrix. Functions that would produce a matrix with a different number
//of columns panic: such a matrix cannot exist in this package, so
//asking for one is considered a fundamental mistake in the calling
//program.
package v3
