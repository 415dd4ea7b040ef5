package usecase

import "context"

// runOptimistic is the one transaction shape every optimistic mutation
// uses: apply the change to in-memory state, fire the remote call, and
// restore the snapshot if the server rejects it. When the owning view's
// context is already done the state belongs to a dead view, so the
// helper leaves it alone and just reports the error.
func runOptimistic(ctx context.Context, apply, revert func(), commit func(context.Context) error) error {
	apply()
	err := commit(ctx)
	if err == nil {
		return nil
	}
	if ctx.Err() == nil {
		revert()
	}
	return err
}
