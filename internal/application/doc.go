// Package application provides application initialization and dependency wiring.
// It loads the dictionary, filters the candidate words, and assembles the
// sampler and passphrase generator, keeping the main package focused on CLI
// parsing and exit handling.
package application
