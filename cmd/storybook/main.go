// ABOUTME: CLI entrypoint for the storybook binary: the web playground server, the terminal playground and version.
// ABOUTME: Commands are built with cobra; configuration comes from storybook.yml, STORYBOOK_* env vars and flags.
package main

import "os"

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
