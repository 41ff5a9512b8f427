// Package validator checks user input before it is sent to the API.
//
// Rules are plain values built by helper constructors and evaluated
// together by Apply, which reports every failed rule at once:
//
//	err := validator.Apply(
//		validator.Required("email", in.Email),
//		validator.ValidEmail("email", in.Email),
//		validator.MinRunes("name", in.Name, 4),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs.Has("email") {
//		...
//	}
package validator
