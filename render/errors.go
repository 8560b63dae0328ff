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

package render

import (
	"fmt"

	ptable "github.com/lfuentes/goptable"
)

// Error is the error type for figure building and export. It fulfills
// ptable.Error.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string { return err.message }

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func errorf(format string, a ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, a...)}
}

// errDecorate asserts that the given error implements ptable.Error and
// decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(ptable.Error)
	err2.Decorate(caller)
	return err2
}

// BackendError marks errors caused by the PNG rasterization backend (the
// headless browser) being missing or broken, so callers can tell them from
// bad-input errors. The method does nothing; it only separates the
// interface, as with ptable.LastFrameError.
type BackendError interface {
	ptable.Error
	BackendUnavailable()
}

// backendError implements BackendError.
type backendError struct {
	err Error
}

func (err *backendError) Error() string { return err.err.Error() }

// Decorate adds new information to the error
func (err *backendError) Decorate(deco string) []string { return err.err.Decorate(deco) }

// BackendUnavailable does nothing
func (err *backendError) BackendUnavailable() {}

func newBackendError(cause error) *backendError {
	e := new(backendError)
	e.err.message = "Failed to render PNG because the headless browser backend is unavailable. " +
		"Install chromium or google-chrome and make sure it is on the PATH. " +
		"Underlying error: " + cause.Error()
	return e
}
