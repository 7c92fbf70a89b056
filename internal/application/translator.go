package application

import (
	"fmt"

	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/rs/zerolog"
)

type Translator struct {
	logger zerolog.Logger
}

func NewTranslator(logger zerolog.Logger) *Translator {
	return &Translator{logger: logger}
}

// Translate walks the goal grid row-major and collects one placement
// per object cell. Labels outside the vocabulary are kept as empty
// cells so a single stray label cannot sink the whole batch.
func (t *Translator) Translate(grid domain.GoalGrid) (domain.TargetObjectSet, error) {
	if err := checkGrid(grid); err != nil {
		return domain.TargetObjectSet{}, err
	}

	var set domain.TargetObjectSet
	for r, row := range grid {
		for c, label := range row {
			pos := domain.Position{Row: r, Column: c}
			obj, class := domain.ParseCellLabel(label, pos)
			switch class {
			case domain.CellObject:
				set.Add(obj)
			case domain.CellSpace:
				set.Empties = append(set.Empties, pos)
			default:
				t.logger.Warn().
					Str("label", label).
					Int("row", r).
					Int("column", c).
					Msg("unknown goal label treated as space")
				set.Empties = append(set.Empties, pos)
			}
		}
	}

	return set, nil
}

// Analyze reports the grid's composition without submitting anything.
func (t *Translator) Analyze(grid domain.GoalGrid) (GoalAnalysis, error) {
	if err := checkGrid(grid); err != nil {
		return GoalAnalysis{}, err
	}

	analysis := GoalAnalysis{Rows: grid.Rows(), Columns: grid.Columns()}
	for r, row := range grid {
		for c, label := range row {
			obj, class := domain.ParseCellLabel(label, domain.Position{Row: r, Column: c})
			switch class {
			case domain.CellSpace:
				analysis.Spaces++
			case domain.CellUnknown:
				analysis.Unknown++
			default:
				switch obj.Kind {
				case domain.KindPolyanet:
					analysis.Polyanets++
				case domain.KindSoloon:
					analysis.Soloons++
				case domain.KindCometh:
					analysis.Comeths++
				}
			}
		}
	}

	return analysis, nil
}

func checkGrid(grid domain.GoalGrid) error {
	if grid.Rows() == 0 {
		return fmt.Errorf("%w: grid has no rows", domain.ErrInvalidGoal)
	}
	if err := grid.Rectangular(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidGoal, err)
	}

	return nil
}
