package picker

// Aggregator collects the latest committed value of every column.
//
// Every Commit broadcasts the full selection, including columns that did not
// change, so OnChange consumers can replace their state wholesale.
type Aggregator struct {
	// OnChange receives a copy of the full selection after each commit.
	OnChange func(Values)

	values Values
}

// NewAggregator returns an empty aggregator.
func NewAggregator(onChange func(Values)) *Aggregator {
	return &Aggregator{OnChange: onChange, values: Values{}}
}

// Seed records a column's initial value without broadcasting.
func (a *Aggregator) Seed(label string, value any) {
	a.init()
	a.values[label] = value
}

// Commit records value for label and broadcasts the full selection.
// It returns the broadcast snapshot.
func (a *Aggregator) Commit(label string, value any) Values {
	a.init()
	a.values[label] = value
	snapshot := a.values.Clone()
	if a.OnChange != nil {
		a.OnChange(snapshot)
	}
	return snapshot
}

// Values returns a copy of the current selection.
func (a *Aggregator) Values() Values {
	return a.values.Clone()
}

// Len returns the number of columns with a selection.
func (a *Aggregator) Len() int {
	return len(a.values)
}

func (a *Aggregator) init() {
	if a.values == nil {
		a.values = Values{}
	}
}
