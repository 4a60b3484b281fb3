package main

import "github.com/kozaktomas/door-sentry/cmd"

func main() {
	cmd.Execute()
}
