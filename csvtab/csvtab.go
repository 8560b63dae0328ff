/*
 * csvtab.go, part of goPTable.
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

//Package csvtab reads element-count CSV tables and writes the CSV export
//of the count/fraction tables.
package csvtab

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	ptable "github.com/lfuentes/goptable"
)

//ElementCounts reads the CSV file with the given name into an element
//count. The file must either have columns named "Element" and
//"element_count", or carry the symbols and counts in its first two columns;
//which schema applies is decided once, from the header row. Rows with a
//missing symbol or count are dropped. Counts must be numeric, non-negative
//and integral. Rows whose (normalized) symbol is in exclude are skipped,
//and duplicate symbols are summed.
func ElementCounts(name string, exclude []string) (ptable.ElementCount, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 //ragged rows become dropped rows, not read errors
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, Error{fmt.Sprintf("Failed to read CSV input: %s", err.Error()), name, []string{"ElementCounts"}, true}
	}
	if len(records) == 0 {
		return nil, Error{fmt.Sprintf("CSV input has no rows: %s", name), name, []string{"ElementCounts"}, true}
	}
	//The schema branch is taken here, once: either the header names the two
	//columns we need, or the first two columns are used positionally.
	header := records[0]
	symCol, cntCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "Element":
			if symCol < 0 {
				symCol = i
			}
		case ptable.ColCount:
			if cntCol < 0 {
				cntCol = i
			}
		}
	}
	if symCol < 0 || cntCol < 0 {
		if len(header) < 2 {
			return nil, Error{"CSV input must contain 'Element' and 'element_count' columns or at least two columns", name, []string{"ElementCounts"}, true}
		}
		symCol, cntCol = 0, 1
	}
	excluded := make(map[string]bool, len(exclude))
	for _, sym := range exclude {
		excluded[sym] = true
	}
	counts := make(ptable.ElementCount)
	rows := 0
	for i, rec := range records[1:] {
		if symCol >= len(rec) || cntCol >= len(rec) {
			continue
		}
		rawSym := strings.TrimSpace(rec[symCol])
		rawCnt := strings.TrimSpace(rec[cntCol])
		if rawSym == "" || rawCnt == "" {
			continue
		}
		rows++
		sym, err := ptable.NormalizeSymbol(rawSym)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("ElementCounts: row %d of %s", i+1, name))
		}
		v, err := strconv.ParseFloat(rawCnt, 64)
		if err != nil {
			return nil, Error{fmt.Sprintf("CSV input contains a non-numeric count %q (row %d)", rawCnt, i+1), name, []string{"ElementCounts"}, true}
		}
		if v < 0 {
			return nil, Error{fmt.Sprintf("CSV input contains negative counts: %s", name), name, []string{"ElementCounts"}, true}
		}
		if v != math.Trunc(v) {
			return nil, Error{fmt.Sprintf("CSV input contains non-integer counts: %s", name), name, []string{"ElementCounts"}, true}
		}
		if excluded[sym] {
			continue
		}
		counts[sym] += int(v)
	}
	if rows == 0 {
		return nil, Error{fmt.Sprintf("CSV input has no valid Element/count rows: %s", name), name, []string{"ElementCounts"}, true}
	}
	if len(counts) == 0 {
		if len(exclude) > 0 {
			listed := append([]string{}, exclude...)
			sort.Slice(listed, func(i, j int) bool {
				zi, _ := ptable.AtomicNumber(listed[i])
				zj, _ := ptable.AtomicNumber(listed[j])
				return zi < zj
			})
			return nil, Error{fmt.Sprintf("No counts left after excluding elements (%s) in '%s'", strings.Join(listed, ", "), name), name, []string{"ElementCounts"}, true}
		}
		return nil, Error{fmt.Sprintf("No counts left after filtering CSV input: %s", name), name, []string{"ElementCounts"}, true}
	}
	return counts, nil
}

//WriteExport writes the export table as CSV to the file with the given
//name, overwriting it if it exists.
func WriteExport(name string, exp *ptable.Export) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(exp.Header()); err != nil {
		return Error{err.Error(), name, []string{"WriteExport"}, true}
	}
	for i, sym := range exp.Symbols {
		rec := []string{sym, strconv.Itoa(exp.Counts[i])}
		if exp.Fractions != nil {
			rec = append(rec, strconv.FormatFloat(exp.Fractions[i], 'g', -1, 64))
		}
		if exp.LogFractions != nil {
			rec = append(rec, strconv.FormatFloat(exp.LogFractions[i], 'g', -1, 64))
		}
		if err := w.Write(rec); err != nil {
			return Error{err.Error(), name, []string{"WriteExport"}, true}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Error{err.Error(), name, []string{"WriteExport"}, true}
	}
	return nil
}

//errDecorate asserts that the given error implements ptable.Error and
//decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(ptable.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the error type for CSV ingestion and export. It fulfills
//ptable.Error and ptable.DataError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string { return err.message }

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing operation was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format associated to the error (always "csv")
func (err Error) Format() string { return "csv" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }
