package normalize

import "github.com/alnah/go-docinsert/node"

// TableSpans reconciles the column spans of every table so that each row's
// total span equals the table's target width. Tables with any row span
// above 1 are left alone.
func TableSpans(root *node.Node) {
	if root.Kind == node.KindTable {
		reconcile(root)
	}
	for _, c := range root.Children() {
		TableSpans(c)
	}
}

// reconcile takes the row with the most cells as the true column count.
// In every row, cells spanning more than one column share what is left once
// each single-column cell has claimed one column. An early cell that asks
// for the whole remainder is cut back so every later spanning cell keeps at
// least one column, and the last spanning cell absorbs the rest.
func reconcile(table *node.Node) {
	rows := table.Rows()
	target := 0
	for _, row := range rows {
		for _, cell := range row.Children() {
			if cell.Cell().Rows() > 1 {
				return
			}
		}
		target = max(target, row.Len())
	}

	for _, row := range rows {
		var spanning []*node.CellData
		for _, cell := range row.Children() {
			if d := cell.Cell(); d.Cols() > 1 {
				spanning = append(spanning, d)
			}
		}
		budget := target - (row.Len() - len(spanning))

		for i, d := range spanning {
			after := len(spanning) - i - 1
			switch {
			case after == 0:
				d.ColSpan = budget
			case d.ColSpan >= budget:
				d.ColSpan = budget - after
			}
			budget -= d.ColSpan
		}
	}
}
