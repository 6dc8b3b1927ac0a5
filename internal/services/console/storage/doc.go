// Package storage defines the console's own persistence contracts.
//
// The console keeps no copy of arena entities. The only state it owns is the
// submission gate that stops a form from being posted to the backend twice.
package storage
