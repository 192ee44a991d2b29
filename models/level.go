package models

// Level is the licence level of a driver. The known labels are listed below,
// but the value is treated as plain text everywhere: nothing rejects an
// unknown label.
type Level string

const (
	// LevelLearner is a driver holding a learner permit.
	LevelLearner Level = "Learner"

	// LevelRestricted is a driver holding a restricted licence.
	LevelRestricted Level = "Restricted"

	// LevelFull is a driver holding a full licence.
	LevelFull Level = "Full"
)

// Levels lists the known level labels in display order.
var Levels = []Level{LevelLearner, LevelRestricted, LevelFull}

// Known reports whether l is one of [Levels].
func (l Level) Known() bool {
	for _, known := range Levels {
		if l == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return string(l)
}
