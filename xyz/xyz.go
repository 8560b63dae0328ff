/*
 * xyz.go, part of goPTable.
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

//Package xyz reads XYZ and EXTXYZ structure files, plain or compressed,
//and tallies per-element atom counts over the frames of a trajectory.
package xyz

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	ptable "github.com/lfuentes/goptable"
	"gonum.org/v1/gonum/mat"
)

//Frame is one structure snapshot of a trajectory: the element symbol of
//every atom (canonical capitalization), the coordinates as an n x 3 matrix
//in the same order, and the key=value metadata of the EXTXYZ comment line
//(empty for plain XYZ files).
type Frame struct {
	Symbols []string
	Coords  *mat.Dense
	Info    map[string]string
}

//Len returns the number of atoms in the frame.
func (F *Frame) Len() int {
	return len(F.Symbols)
}

//StructureName returns the trimmed structure_name metadata entry, or the
//empty string if the frame has none.
func (F *Frame) StructureName() string {
	return strings.TrimSpace(F.Info["structure_name"])
}

//Reader reads the frames of an XYZ/EXTXYZ file one at a time.
type Reader struct {
	f        *os.File
	z        io.ReadCloser //nil for uncompressed files
	h        *bufio.Reader
	filename string
	frame    int //index of the next frame to be read, for error reports
	readable bool
}

//zstd.Decoder.Close returns nothing, so it can't be an io.ReadCloser
//by itself.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

//New opens the XYZ/EXTXYZ file with the given name for reading. Files
//ending in .gz are decompressed with gzip, files ending in .zst or .zstd
//with zstd; anything else is read as plain text.
func New(name string) (*Reader, error) {
	R := new(Reader)
	R.filename = name
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		R.z, err = gzip.NewReader(bufio.NewReader(R.f))
		if err != nil {
			R.f.Close()
			return nil, Error{UnableToOpen + ": " + err.Error(), R.filename, []string{"New"}, true}
		}
		R.h = bufio.NewReader(R.z)
	case strings.HasSuffix(lower, ".zst") || strings.HasSuffix(lower, ".zstd"):
		d, err := zstd.NewReader(bufio.NewReader(R.f))
		if err != nil {
			R.f.Close()
			return nil, Error{UnableToOpen + ": " + err.Error(), R.filename, []string{"New"}, true}
		}
		R.z = zstdql{d.Close, d}
		R.h = bufio.NewReader(R.z)
	default:
		R.h = bufio.NewReader(R.f)
	}
	R.readable = true
	return R, nil
}

//Readable returns true if the handle is readable (if it is possible to
//call Next on it).
func (R *Reader) Readable() bool {
	return R.readable
}

//Close closes the underlying file and marks the reader as unreadable.
func (R *Reader) Close() {
	if !R.readable {
		return
	}
	if R.z != nil {
		R.z.Close()
	}
	R.f.Close()
	R.readable = false
}

//Next reads and returns the next frame of the trajectory. When no frames
//remain it closes the reader and returns a LastFrameError, which signals
//normal termination, not an actual problem.
func (R *Reader) Next() (*Frame, error) {
	if !R.readable {
		return nil, Error{TrajUnIniRead, R.filename, []string{"Next"}, true}
	}
	line, _ := R.h.ReadString('\n')
	if strings.TrimSpace(line) == "" {
		//EOF, or a trailing blank line, which hand-edited files often
		//carry. Either way the trajectory just ended.
		R.Close()
		return nil, newlastFrameError(R.filename, "Next")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms < 0 {
		return nil, Error{fmt.Sprintf("%s: bad atom-count line %q in frame %d", WrongFormat, strings.TrimSpace(line), R.frame), R.filename, []string{"Next"}, true}
	}
	comment, err := R.h.ReadString('\n')
	if err != nil && natoms > 0 {
		return nil, Error{fmt.Sprintf("%s: frame %d truncated after the atom-count line", WrongFormat, R.frame), R.filename, []string{"Next"}, true}
	}
	F := new(Frame)
	F.Symbols = make([]string, natoms)
	F.Info = parseInfo(comment)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = R.h.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return nil, Error{fmt.Sprintf("%s: frame %d has %d atoms but ends after %d", WrongFormat, R.frame, natoms, i), R.filename, []string{"Next"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, Error{fmt.Sprintf("%s: atom line %d of frame %d ill formed: %q", WrongFormat, i, R.frame, strings.TrimSpace(line)), R.filename, []string{"Next"}, true}
		}
		sym, err := ptable.NormalizeSymbol(fields[0])
		if err != nil {
			return nil, Error{fmt.Sprintf("atom %d of frame %d: %s", i, R.frame, err.Error()), R.filename, []string{"Next"}, true}
		}
		F.Symbols[i] = sym
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("%s: can't parse coordinate %d of atom %d in frame %d", WrongFormat, j, i, R.frame), R.filename, []string{"Next"}, true}
			}
		}
	}
	if natoms > 0 {
		F.Coords = mat.NewDense(natoms, 3, coords)
	}
	R.frame++
	return F, nil
}

//parseInfo parses the EXTXYZ comment line into its key=value entries.
//Values may be double-quoted to contain spaces. Tokens without '=' are
//ignored, as is everything on a plain-XYZ comment line.
func parseInfo(comment string) map[string]string {
	info := make(map[string]string)
	comment = strings.TrimSpace(comment)
	for len(comment) > 0 {
		eq := strings.Index(comment, "=")
		if eq < 0 {
			break
		}
		sp := strings.LastIndex(comment[:eq], " ")
		key := strings.TrimSpace(comment[sp+1 : eq])
		rest := comment[eq+1:]
		var val string
		if strings.HasPrefix(rest, `"`) {
			end := strings.Index(rest[1:], `"`)
			if end < 0 {
				val = rest[1:]
				rest = ""
			} else {
				val = rest[1 : end+1]
				rest = rest[end+2:]
			}
		} else {
			end := strings.IndexAny(rest, " \t")
			if end < 0 {
				val = rest
				rest = ""
			} else {
				val = rest[:end]
				rest = rest[end+1:]
			}
		}
		if key != "" {
			info[key] = val
		}
		comment = strings.TrimSpace(rest)
	}
	return info
}

//ReadAll reads every frame of the file with the given name.
func ReadAll(name string) ([]*Frame, error) {
	R, err := New(name)
	if err != nil {
		return nil, err
	}
	defer R.Close()
	frames := make([]*Frame, 0, 1)
	for {
		F, err := R.Next()
		if err != nil {
			if _, ok := err.(ptable.LastFrameError); ok {
				break
			}
			return nil, errDecorate(err, "ReadAll")
		}
		frames = append(frames, F)
	}
	return frames, nil
}
