package ports

import (
	"context"

	"github.com/bnema/megaverse-cli/internal/domain"
)

type MegaverseAPI interface {
	CreateObject(ctx context.Context, obj domain.PlacementObject) error
	DeleteObject(ctx context.Context, kind domain.ObjectKind, pos domain.Position) error
	FetchGoal(ctx context.Context) (domain.GoalGrid, error)
}
