package resolve

// IndexedStep is one curriculum step as fed into the index builder.
type IndexedStep struct {
	DayNumber  int
	DayID      uint
	StepNumber int
	StepID     uint
}

type dayStep struct{ day, step int }

// Index maps curriculum positions (day number, step number) to the row IDs
// responses are stored under. Catalog references speak in numbers; the store
// speaks in IDs; the index is the only translation between the two.
type Index struct {
	dayIDs     map[int]uint
	dayNumbers map[uint]int
	stepIDs    map[dayStep]uint
}

func NewIndex(steps []IndexedStep) *Index {
	idx := &Index{
		dayIDs:     make(map[int]uint),
		dayNumbers: make(map[uint]int),
		stepIDs:    make(map[dayStep]uint, len(steps)),
	}
	for _, s := range steps {
		idx.dayIDs[s.DayNumber] = s.DayID
		idx.dayNumbers[s.DayID] = s.DayNumber
		idx.stepIDs[dayStep{s.DayNumber, s.StepNumber}] = s.StepID
	}
	return idx
}

func (idx *Index) DayID(dayNumber int) (uint, bool) {
	id, ok := idx.dayIDs[dayNumber]
	return id, ok
}

func (idx *Index) DayNumber(dayID uint) (int, bool) {
	n, ok := idx.dayNumbers[dayID]
	return n, ok
}

func (idx *Index) StepID(dayNumber, stepNumber int) (uint, bool) {
	id, ok := idx.stepIDs[dayStep{dayNumber, stepNumber}]
	return id, ok
}
