// Package cli implements the ewsctl command tree.
//
// Every command builds a fresh ews.Service from the resolved connection
// profile (see package config), runs one operation and prints the result as
// text or, with --json, as a single JSON document on stdout. Exchange errors
// are reported on stderr as "Error: <Token> (<name>): <message>" and exit
// with status 1.
//
// The serve command runs the in-memory endpoint from package ewstest, which
// makes the other commands usable without an Exchange server.
package cli
