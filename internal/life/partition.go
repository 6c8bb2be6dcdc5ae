package life

// Partition is the half-open row range [Start, Stop) owned by one worker.
type Partition struct {
	Start int
	Stop  int
}

// Len returns the number of rows in the range.
func (p Partition) Len() int { return p.Stop - p.Start }

// Empty reports whether the range owns no rows.
func (p Partition) Empty() bool { return p.Stop <= p.Start }

// PartitionRows splits gridSize rows into workers contiguous ranges. Every
// range gets gridSize/workers rows and the last one also takes the remainder,
// so when workers exceeds gridSize every range but the last is empty. Returns
// nil when workers < 1.
func PartitionRows(gridSize, workers int) []Partition {
	if workers < 1 {
		return nil
	}
	if gridSize < 0 {
		gridSize = 0
	}
	width := gridSize / workers
	rest := gridSize % workers
	parts := make([]Partition, workers)
	for i := range parts {
		start := i * width
		parts[i] = Partition{Start: start, Stop: start + width}
	}
	parts[workers-1].Stop += rest
	return parts
}
