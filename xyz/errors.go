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

package xyz

import (
	ptable "github.com/lfuentes/goptable"
)

//errDecorate asserts that the given error implements ptable.Error and
//decorates it with the caller's name before returning it. Calling it with
//any other error type panics.
func errDecorate(err error, caller string) error {
	err2 := err.(ptable.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the error type for XYZ/EXTXYZ reading. It fulfills ptable.Error
//and ptable.DataError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return "xyz file " + err.filename + " error: " + err.message
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//E.deco is a slice, hence a pointer itself, so a value receiver works.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing reader was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "xyz") associated to the error
func (err Error) Format() string { return "xyz" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead = "Reader uninitialized or already closed"
	UnableToOpen  = "Unable to open file"
	WrongFormat   = "Wrong format in the XYZ file or frame"
)

//lastFrameError implements ptable.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "xyz" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
