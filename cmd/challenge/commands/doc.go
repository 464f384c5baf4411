// Package commands defines the challenge CLI.
//
// Commands
//
//   - themes     List challenge themes and their categories
//   - prompt     Print the prompt built for a theme without calling the model
//   - generate   Generate a challenge and print the normalized output
//
// Only generate reads the config file and talks to the model provider.
package commands
