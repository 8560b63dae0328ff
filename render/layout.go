/*
 * layout.go, part of goPTable.
 *
 *
 * Copyright 2025 Lucia Fuentes <lfuentes{at}protonmailDOTcom>
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

package render

//Rows and columns of the rendered grid. The main table occupies rows 1-7;
//row 8 stays empty, and the detached lanthanide/actinide series render as
//rows 9 and 10, starting at column 4.
const (
	gridRows = 10
	gridCols = 18
)

//gridPos places an atomic number on the standard 18-column periodic table.
func gridPos(z int) (row, col int) {
	switch {
	case z == 1:
		return 1, 1
	case z == 2:
		return 1, 18
	case z <= 4:
		return 2, z - 2
	case z <= 10:
		return 2, z + 8 //B through Ne, columns 13-18
	case z <= 12:
		return 3, z - 10
	case z <= 18:
		return 3, z //Al through Ar, columns 13-18
	case z <= 36:
		return 4, z - 18
	case z <= 54:
		return 5, z - 36
	case z <= 56:
		return 6, z - 54
	case z <= 71:
		return 9, z - 53 //lanthanides, columns 4-18
	case z <= 86:
		return 6, z - 68
	case z <= 88:
		return 7, z - 86
	case z <= 103:
		return 10, z - 85 //actinides, columns 4-18
	default:
		return 7, z - 100
	}
}
