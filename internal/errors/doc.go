// Package errors provides structured errors for the character creation menus.
//
// Errors carry a Code, a user-facing Message, an optional Cause and metadata.
// The menus rely on the code to decide how a failure is surfaced:
//
//   - FailedPrecondition / OutOfRange: a rejected user action. The message is
//     shown on the message bar and the input loop continues.
//   - Internal: a data-consistency bug or a broken collaborator. The current
//     menu activation is aborted.
//
// # Basic Usage
//
//	err := errors.OutOfRangef("%d attribute points to assign!", points)
//	err := errors.FailedPrecondition("a class must be chosen first").
//	    WithMeta("player", name)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := store.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save entity")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("difficulty", cfg.Difficulty, 0, 5, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
