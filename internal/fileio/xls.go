package fileio

import (
	"bytes"
	"errors"
	"io"
	"strings"

	xls "github.com/extrame/xls"
)

// normalizeCell: NBSP → пробел, обрезка краёв.
func normalizeCell(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\u00A0", " ", "\u202F", " ").Replace(s))
}

// sheetWidth — реальная ширина листа: Row.LastCol() у старых .xls врёт,
// поэтому пробегаем колонки до probeMax и ищем последнюю непустую.
func sheetWidth(sheet *xls.WorkSheet) int {
	const probeMax = 64
	width := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		r := sheet.Row(i)
		if r == nil {
			continue
		}
		for j := width; j < probeMax; j++ {
			if normalizeCell(r.Col(j)) != "" {
				width = j + 1
			}
		}
	}
	return max(width, 1)
}

func readXLS(r io.Reader, headerRow int) (Table, error) {
	if headerRow <= 0 {
		return Table{}, errors.New("headerRow must be 1-based and >= 1")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return Table{}, err
	}

	var wb *xls.WorkBook
	var lastErr error
	for _, ch := range []string{"utf-8", "windows-1252", "windows-1251"} {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return Table{}, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return Table{}, errors.New("xls: workbook has no sheets")
	}

	width := sheetWidth(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, width)
		if row != nil {
			for j := 0; j < width; j++ {
				cols[j] = normalizeCell(row.Col(j))
			}
		}
		rows = append(rows, cols)
	}
	return toTable(rows, headerRow)
}
