// Package cli implements the storefront command line: one subcommand per
// storefront page, rendered as plain text tables.
//
// Navigation requests raised by the client are printed as hints, for example
// a rejected session prints the login command to run next.
package cli
