// Package greeter serves the greeting endpoints: a fixed root greeting,
// a fixed "hey" greeting, and an echo of the request body.
package greeter

const (
	// RootGreeting is the body returned by GET /.
	RootGreeting = "Hello world!"

	// HeyGreeting is the body returned by GET /hey.
	HeyGreeting = "Hey there!"
)
