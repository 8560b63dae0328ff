/*
 * doc.go, part of goPTable.
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

/*Package ptable is the main package of the goPTable tool. It provides the
periodic-table data, element-symbol normalization and the count/fraction
transforms behind the goptable command, which turns XYZ/EXTXYZ trajectories
or element-count CSV tables into periodic-table heatmaps.


	**goPTable capabilities**

    Reads XYZ and EXTXYZ structure files, including multi-frame
	trajectories, plain or gzip/zstd compressed (subpackage xyz).

    Reads and writes element-count CSV tables (subpackage csvtab).

    Tallies per-element atom counts over all frames or a single frame,
	with optional element exclusion and deduplication by the
	structure_name metadata entry.

    Normalizes counts to fractions of the maximum count, or to the
	base-10 logarithm of those fractions.

    Renders the counts on a periodic-table grid, colored through a named
	colormap, and exports the figure as a rasterized PNG or a standalone
	interactive HTML page (subpackage render).

The goptable command under cmd/ glues these together; see its usage text
for the CLI contract.
*/
package ptable
