// Package validator validates request structs at the HTTP boundary.
//
// It wraps go-playground/validator and turns its errors into
// ValidationErrors, a list of {field, message, value} entries where field is
// the dotted JSON path ("fullname.firstname"). Request types can supply
// user-facing messages by implementing MessageProvider:
//
//	type registerRequest struct {
//		Email string `json:"email" validate:"required,email,min=5"`
//	}
//
//	func (registerRequest) ValidationMessages() map[string]string {
//		return map[string]string{"email": "Invalid email"}
//	}
//
//	if err := validator.Validate(req); err != nil {
//		verrs := validator.ExtractValidationErrors(err)
//	}
//
// Values of fields named "password" are never echoed back.
package validator
