package sqlite

// TaskRow is the stored form of a scheduled task.
// Seq records insertion order and breaks ties between equal start times.
type TaskRow struct {
	Seq         int64
	ID          string
	Description string
	StartMinute int
	EndMinute   int
	Priority    string
	Completed   int
}
