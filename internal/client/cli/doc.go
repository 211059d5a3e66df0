// Package cli provides the interactive gophdiary command-line client.
//
// It wires configuration, logging and local storage into a small REPL.
// Typical flow: register an account, log in, then list, show, add, edit
// and delete diary entries until logout or exit.
//
// Commands
//
//	Not logged in:
//	  help, register, login, exit | quit
//
//	Logged in:
//	  help, list | l, show | select <n>, add, edit, delete, logout, exit | quit
//
// Entry text is entered over several lines and ends with a line holding
// only "." (or end of input). Blank lines inside an entry are kept.
// "show <n>" selects the n-th entry of the last listing; edit and delete act
// on the selection.
//
// The cobra command tree (NewRootCmd) adds "init" and "version".
package cli
