package application

// GoalAnalysis summarizes a goal grid without mutating anything.
type GoalAnalysis struct {
	Rows      int `json:"rows"`
	Columns   int `json:"columns"`
	Polyanets int `json:"polyanets"`
	Soloons   int `json:"soloons"`
	Comeths   int `json:"comeths"`
	Spaces    int `json:"spaces"`
	Unknown   int `json:"unknown"`
}

// Objects counts the cells that translate into placement objects.
func (a GoalAnalysis) Objects() int {
	return a.Polyanets + a.Soloons + a.Comeths
}
