package resize

// FlushMsg signals a debounce period has passed for a table's widths
type FlushMsg struct {
	Key string
	Seq int
}
