package pipeline

// Stage names recorded in a Summary.
const (
	StageLoad           = "load"
	StageDropDuplicates = "drop_duplicates"
	StageDropMissing    = "drop_missing"
	StageOutliers       = "outliers"
	StageEncode         = "encode"
)

// StageCount is the row count observed after a stage.
type StageCount struct {
	Stage string
	Rows  int
}

// Summary is the diagnostic record of one run.
type Summary struct {
	Stages []StageCount
	Schema Schema
}

// Rows returns the row count after the named stage.
func (s Summary) Rows(stage string) (int, bool) {
	for _, c := range s.Stages {
		if c.Stage == stage {
			return c.Rows, true
		}
	}
	return 0, false
}

// Removed returns how many rows the named stage dropped.
func (s Summary) Removed(stage string) int {
	for i := 1; i < len(s.Stages); i++ {
		if s.Stages[i].Stage == stage {
			return s.Stages[i-1].Rows - s.Stages[i].Rows
		}
	}
	return 0
}
