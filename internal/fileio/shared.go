package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Table — прочитанная таблица: заголовки в порядке колонок и записи по ним.
type Table struct {
	Headers []string
	Records []map[string]string
	Lines   []int // номер строки таблицы (1-based) для Records[i]
}

// ReadAny — выберет парсер по расширению. headerRow — номер строки заголовков (1-based).
func ReadAny(r io.Reader, filename string, headerRow int) (Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return Table{}, fmt.Errorf("unsupported file: %s", filename)
	}
}

// ReadAnyMaps — как ReadAny, но только записи.
func ReadAnyMaps(r io.Reader, filename string, headerRow int) ([]map[string]string, error) {
	t, err := ReadAny(r, filename, headerRow)
	if err != nil {
		return nil, err
	}
	return t.Records, nil
}

// ReadFile открывает файл по пути и читает его через ReadAny.
func ReadFile(path string, headerRow int) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	t, err := ReadAny(f, path, headerRow)
	if err != nil {
		return Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// pickHeader — берёт строку заголовков (1-based) и подставляет Column N для пустых.
func pickHeader(rows [][]string, headerRow int) []string {
	h := rows[headerRow-1]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToMaps — AoA в []map по заголовкам, полностью пустые строки пропускаем.
// lines — номер строки таблицы (1-based) для каждой записи.
func rowsToMaps(rows [][]string, headers []string, headerRow int) (out []map[string]string, lines []int) {
	for r := headerRow; r < len(rows); r++ {
		rec := rows[r]
		m := make(map[string]string, len(headers))
		empty := true
		for c, h := range headers {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			m[h] = v
		}
		if !empty {
			out = append(out, m)
			lines = append(lines, r+1)
		}
	}
	return out, lines
}

// ErrHeaderRow — строка заголовков вне таблицы.
var ErrHeaderRow = errors.New("header row out of range")

func toTable(rows [][]string, headerRow int) (Table, error) {
	if len(rows) == 0 {
		return Table{}, nil
	}
	if headerRow < 1 || headerRow > len(rows) {
		return Table{}, fmt.Errorf("%w: %d (rows: %d)", ErrHeaderRow, headerRow, len(rows))
	}
	h := pickHeader(rows, headerRow)
	recs, lines := rowsToMaps(rows, h, headerRow)
	return Table{Headers: h, Records: recs, Lines: lines}, nil
}

var reHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// NormHeaderKey: нижний регистр, NBSP → пробел, служебные символы → пробел, пробелы схлопнуты.
func NormHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ").Replace(s)
	s = reHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// FindHeader — строгий поиск колонки: заголовок равен одному из вариантов
// после нормализации без учёта пробелов ("Item Description" == "ItemDescription").
func FindHeader(headers []string, aliases ...string) (string, bool) {
	for _, a := range aliases {
		want := squashHeader(a)
		for _, h := range headers {
			if squashHeader(h) == want {
				return h, true
			}
		}
	}
	return "", false
}

// squashHeader — NormHeaderKey без пробелов: "Item Description" == "ItemDescription".
func squashHeader(s string) string { return strings.ReplaceAll(NormHeaderKey(s), " ", "") }

// ResolveKey — нестрогий поиск ключа в записи по желаемому имени.
// Поддерживает варианты через "|" (например: "Description|Item"); варианты
// проверяются по порядку, более ранний важнее.
func ResolveKey(rec map[string]string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	var alts []string
	for _, a := range strings.Split(want, "|") {
		if a = strings.TrimSpace(a); a != "" {
			alts = append(alts, a)
		}
	}

	// как есть
	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	keys := make([]string, 0, len(rec))
	for k := range rec {
		if squashHeader(k) != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys) // порядок map не должен влиять на результат

	// точное по нормализованному
	for _, a := range alts {
		sa := squashHeader(a)
		for _, k := range keys {
			if squashHeader(k) == sa {
				return k
			}
		}
	}

	// вхождение (want ⊂ key или key ⊂ want); среди ключей одного варианта — самый короткий
	for _, a := range alts {
		sa := squashHeader(a)
		if sa == "" {
			continue
		}
		best := ""
		for _, k := range keys {
			sk := squashHeader(k)
			if !strings.Contains(sk, sa) && !(len(sk) >= 3 && strings.Contains(sa, sk)) {
				continue
			}
			if best == "" || len(sk) < len(squashHeader(best)) {
				best = k
			}
		}
		if best != "" {
			return best
		}
	}
	return ""
}
