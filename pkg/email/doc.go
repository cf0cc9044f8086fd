// Package email sends transactional mail such as the welcome message for new
// riders and drivers.
//
// EmailSender has three implementations chosen by NewFromConfig: Postmark for
// production, DevSender which writes messages to a directory, and LogSender
// which only records that a message would have been sent. Message bodies are
// templ components rendered with templates.Render.
package email
