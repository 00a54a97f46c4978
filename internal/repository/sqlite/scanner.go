package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// taskColumns lists the columns ScanTaskRow expects, in order.
const taskColumns = "seq, id, description, start_minute, end_minute, priority, completed"

// ScanTaskRow scans a single task from a database row
func ScanTaskRow(scanner Scanner) (*TaskRow, error) {
	row := &TaskRow{}
	err := scanner.Scan(
		&row.Seq,
		&row.ID,
		&row.Description,
		&row.StartMinute,
		&row.EndMinute,
		&row.Priority,
		&row.Completed,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ScanTaskRows scans multiple tasks from database rows
func ScanTaskRows(rows Rows) ([]*TaskRow, error) {
	var out []*TaskRow
	for rows.Next() {
		row, err := ScanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
