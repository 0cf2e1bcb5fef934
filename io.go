/*
Copyright © 2026 the Arrhenius authors.
This file is part of Arrhenius.

Arrhenius is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Arrhenius is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Arrhenius.  If not, see <http://www.gnu.org/licenses/>.
*/

package arrhenius

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tealeg/xlsx"
)

// TableSheet is the name of the worksheet that WriteXLSX writes to.
const TableSheet = "rate constants"

// WriteCSV writes the table to w in comma-separated format, with a
// header line followed by one line per row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return fmt.Errorf("arrhenius: writing csv header: %v", err)
	}
	if err := cw.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("arrhenius: writing csv: %v", err)
	}
	return nil
}

// WriteXLSX writes the table to w as a Microsoft Excel workbook.
// Rate constants and finite column values are stored as numbers;
// everything else is stored as formatted text.
func (t *Table) WriteXLSX(w io.Writer) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(TableSheet)
	if err != nil {
		return fmt.Errorf("arrhenius: creating xlsx sheet: %v", err)
	}
	row := sheet.AddRow()
	for _, h := range t.Header() {
		row.AddCell().SetString(h)
	}
	const kCol = 8 // index of the first rate constant column
	for i := range t.Rows {
		r := &t.Rows[i]
		row := sheet.AddRow()
		for j, s := range r.Strings() {
			cell := row.AddCell()
			switch {
			case j >= kCol && j < kCol+len(r.K):
				cell.SetFloatWithFormat(r.K[j-kCol], "0.00E+00")
			case j >= kCol+len(r.K) && finite(r.Extra[j-kCol-len(r.K)]):
				cell.SetFloat(r.Extra[j-kCol-len(r.K)])
			default:
				cell.SetString(s)
			}
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("arrhenius: writing xlsx: %v", err)
	}
	return nil
}

// WriteFile writes the table to the named file, choosing the format
// from the file extension: ".xlsx" for Excel and ".csv" (or anything
// else) for comma-separated values. The file name can include
// environment variables.
func (t *Table) WriteFile(filename string) error {
	filename = os.ExpandEnv(filename)
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("arrhenius: creating table file: %v", err)
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		err = t.WriteXLSX(f)
	default:
		err = t.WriteCSV(f)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
