// Package views holds the HTML pages and email bodies as templ components.
package views
