package todo

// Record is the domain model for a todo entry. Records are owned by the
// store that holds them; callers only ever see copies.
type Record struct {
	ID   int64
	Text string
	Done bool
}
