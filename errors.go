/*
 * errors.go, part of goPTable.
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

package ptable

import "fmt"

// Error is the interface for errors that all packages in this module implement.
// The Decorate method allows to add and retrieve info from the error without
// changing its type or wrapping it around something else. The decoration slice
// should contain the functions in the calling stack, each optionally followed
// by extra information, as in "FunctionName: Extra info". If passed an empty
// string, Decorate returns the current decoration without adding to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// DataError is the interface for errors produced while reading user data
// files. FileName returns the offending file and Format the file format
// ("xyz", "csv") the reader was parsing.
type DataError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless method to distinguish the harmless
// end-of-trajectory condition from real DataErrors, so it can be filtered
// in a type switch.
type LastFrameError interface {
	DataError
	NormalLastFrameTermination() //does nothing, just separates this interface from other DataErrors
}

//PError is the concrete error type of the root package. It covers the
//validation errors: bad element symbols, bad flag values and flag
//combinations, and impossible transform requests.
type PError struct {
	message string
	deco    []string
}

func (err *PError) Error() string { return err.message }

//Decorate adds new information to the error, and returns the current
//decoration trail.
func (err *PError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func errorf(format string, a ...interface{}) *PError {
	return &PError{message: fmt.Sprintf(format, a...)}
}
