package session

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Session lifecycle
	Open(ctx context.Context, input OpenInput) (OpenOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Reload(ctx context.Context, id string) (DetailOutput, error)
	Close(ctx context.Context, id string) error

	// Interaction
	Toggle(ctx context.Context, input ToggleInput) (ToggleOutput, error)
	PressLink(ctx context.Context, input PressLinkInput) (PressLinkOutput, error)
}
