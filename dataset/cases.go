// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

const diffPCSuffix = "_diff_pc"

// nationwideCol is the aggregate column dropped from the per-canton series.
const nationwideCol = "CH" + diffPCSuffix

// CaseTable holds per-capita daily new case values keyed by date and canton.
// A (date, canton) pair with no recorded value is absent, never zero.
type CaseTable struct {
	dates   []string
	cantons []string
	values  map[string]map[string]float64
}

// ParseCases parses the wide daily-case CSV. It keeps only the per-capita
// difference columns (suffix _diff_pc), drops the nationwide CH aggregate,
// and derives the canton code from each column name (AG_diff_pc → AG).
func ParseCases(data []byte) (*CaseTable, error) {
	df := dataframe.ReadCSV(bytes.NewReader(data))
	if df.Err != nil {
		return nil, fmt.Errorf("parsing cases: %w", df.Err)
	}
	if !hasColumn(df, "Date") {
		return nil, fmt.Errorf("cases: missing column %q", "Date")
	}

	dates := df.Col("Date").Records()
	t := &CaseTable{values: make(map[string]map[string]float64)}
	for _, d := range dates {
		if _, ok := t.values[d]; ok {
			return nil, fmt.Errorf("cases: duplicate date %q", d)
		}
		t.values[d] = make(map[string]float64)
		t.dates = append(t.dates, d)
	}
	sort.Strings(t.dates)

	for _, name := range df.Names() {
		if !strings.HasSuffix(name, diffPCSuffix) || name == nationwideCol {
			continue
		}
		canton := strings.TrimSuffix(name, diffPCSuffix)
		t.cantons = append(t.cantons, canton)

		vals := df.Col(name).Float()
		for i, v := range vals {
			if math.IsNaN(v) {
				continue // missing cell
			}
			t.values[dates[i]][canton] = v
		}
	}
	sort.Strings(t.cantons)

	if len(t.dates) == 0 {
		return nil, fmt.Errorf("cases: no dates")
	}
	if len(t.cantons) == 0 {
		return nil, fmt.Errorf("cases: no %s columns", diffPCSuffix)
	}
	return t, nil
}

// Dates returns the observed dates in ascending order.
func (t *CaseTable) Dates() []string {
	return t.dates
}

// Cantons returns the canton codes present in the series, sorted.
func (t *CaseTable) Cantons() []string {
	return t.cantons
}

// Value returns the per-capita daily new case value for (date, canton).
// The second return is false when no value was recorded.
func (t *CaseTable) Value(date, canton string) (float64, bool) {
	row, ok := t.values[date]
	if !ok {
		return 0, false
	}
	v, ok := row[canton]
	return v, ok
}
