// Package console serves the Arena Control operator console.
//
// Every screen is rendered server-side from templ components. List screens
// render a shell first and load their table as an htmx fragment; forms post
// back to the same URL and redirect to the owning list once the REST backend
// accepts them. The console stores no entity data; the only state it owns is
// the submission gate that keeps a form from being applied twice.
package console
