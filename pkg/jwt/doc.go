// Package jwt issues and verifies the HS256 access tokens handed to riders and
// drivers.
//
// The signing secret is injected at construction; an empty secret is rejected
// so the server cannot start with unsigned or guessable tokens. Tokens carry
// sub (principal ID), role, jti, iat and exp. Verify only accepts HS256 and
// requires exp.
//
//	svc, err := jwt.NewFromConfig(cfg.JWT)
//	token, claims, err := svc.Issue(principal.ID, "rider")
//	claims, err = svc.Verify(token)
//	if errors.Is(err, jwt.ErrExpiredToken) {
//		// ask the client to log in again
//	}
package jwt
