// Package account exposes registration, login, profile and logout over
// HTTP for one role per Module, plus the session Guard protecting
// authenticated routes.
//
// Riders are mounted under /users and drivers under /captains by Router.
// Tokens are read from the "token" cookie or an "Authorization: Bearer"
// header, as configured by the session.Transport given to NewModule.
package account
