// Package theme stores the light/dark display preference and notifies
// renderers whenever it changes.
//
//	themes, err := theme.Open(ctx, storage)
//	if err != nil {
//		return err
//	}
//	sub := themes.Subscribe(ctx) // receives the restored theme first
//	_, err = themes.Toggle(ctx)
package theme
