// Package binder decodes HTTP request bodies into request structs.
//
// JSON enforces an application/json content type, a size limit, and strict
// decoding: unknown keys and trailing data are errors. Every failure wraps
// one of the package sentinels so the error handler can map it to a 400 or
// 415 response.
//
//	var req registerRequest
//	if err := binder.JSON()(r, &req); err != nil {
//		// errors.Is(err, binder.ErrFailedToParseJSON)
//	}
package binder
