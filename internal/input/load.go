package input

import (
	"fmt"

	"biglittle/internal/diagnostic"
	"biglittle/internal/match"
)

// Diagnostic codes emitted by loading.
const (
	// CodeNameTaken marks a name registered on both sides.
	CodeNameTaken = "cross-side-name"
	// CodeUnknownName marks a preference entry that resolves to nobody.
	CodeUnknownName = "unknown-name"
)

// Load registers both files' names and preference rows, Bigs first. Row
// indices in the preference table follow entry order, which keeps them
// aligned with the registry's insertion-order indices.
//
// Cross-side name collisions are collected as errors; preference entries
// naming nobody on the other side degrade to warnings and are dropped,
// which makes them permanently unacceptable. When any error was collected
// the registry and table are withheld.
func Load(bigs, littles *File) (*match.Names, *match.PreferenceTable, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	names := &match.Names{}
	registerSide(names.Bigs(), bigs, &diags)
	registerSide(names.Littles(), littles, &diags)

	if diags.HasErrors() {
		return nil, nil, diags
	}

	table := &match.PreferenceTable{}
	fillSide(table.BigSide(), names.Littles(), bigs, &diags)
	fillSide(table.LittleSide(), names.Bigs(), littles, &diags)

	return names, table, diags
}

// registerSide inserts every entry name of f on side K.
func registerSide[K, O match.Kind](
	roster match.Roster[K, O],
	f *File,
	diags *diagnostic.Diagnostics,
) {
	for row, e := range f.Entries() {
		if _, err := roster.Insert(e.Name); err != nil {
			diags.AddError(CodeNameTaken,
				fmt.Sprintf("%q is already registered as a %s",
					e.Name, match.KindOf[O]().Label()),
				f.Path, row+1, e.Name)
		}
	}
}

// fillSide resolves every entry's preference names against the opposite
// roster and appends the rows in entry order.
func fillSide[K, O match.Kind](
	side match.Side[K, O],
	opposite match.Roster[O, K],
	f *File,
	diags *diagnostic.Diagnostics,
) {
	for row, e := range f.Entries() {
		prefs := make([]match.Index[O], 0, len(e.Prefs))

		for _, p := range e.Prefs {
			idx, ok := opposite.IndexOf(p)
			if !ok {
				diags.AddWarning(CodeUnknownName,
					fmt.Sprintf("preference %q names no registered %s, skipped",
						p, match.KindOf[O]().Label()),
					f.Path, row+1, e.Name)
				continue
			}

			prefs = append(prefs, idx)
		}

		side.Insert(prefs)
	}
}
