// Package database owns all read and write access to the catalog
// store. No other package touches the authors or books tables
// directly; handlers go through the operations defined here, each of
// which commits or fails as a single unit.
package database
