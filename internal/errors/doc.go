// Package errors provides the structured error type used across rpg-codex.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFoundf("power %d not found", id).
//	    WithMeta("power_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.ListInfo(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load power info")
//	}
//
// # Data faults
//
// Two codes describe problems in the game data itself rather than in the
// caller or the store:
//
//   - PlaceholderDataMissing: a $placeholder$ asked for a slot that its
//     record list does not have (e.g. $eDuration2$ with one duration)
//   - MalformedCurve: a stat curve has two adjacent breakpoints at the same
//     level, so its slope is undefined
//
// Renderers usually report these next to the output instead of failing:
//
//	if errors.GetCode(err).IsDataFault() {
//	    faults = append(faults, err)
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("database.path", cfg.Database.Path, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
