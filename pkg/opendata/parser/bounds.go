package parser

// findDataBounds finds the bounding box of non-empty cells.
// All four values are -1 when the grid is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// hasData reports whether any cell in the grid is non-empty.
func hasData(rows [][]string) bool {
	minRow, _, _, _ := findDataBounds(rows)
	return minRow >= 0
}

// cropToBounds drops leading blank rows and columns and anything past the
// last non-empty row or column. Rows keep their ragged lengths.
func cropToBounds(rows [][]string) [][]string {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	out := make([][]string, 0, maxRow-minRow+1)
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		end := maxCol + 1
		if end > len(row) {
			end = len(row)
		}
		if minCol >= end {
			out = append(out, nil)
			continue
		}
		out = append(out, row[minCol:end])
	}
	return out
}
