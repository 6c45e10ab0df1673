// Package cli is the interactive command line of gophauth.
//
// Commands
//
//	register   create an account (email, name, password)
//	login      authenticate and keep the issued token
//	verify     verify the current token and take the refreshed one
//	whoami     print the user of the current session
//	ping       check that the server answers
//	help       list commands
//	exit       quit
//
// Passwords are read from the terminal without echo.
package cli
