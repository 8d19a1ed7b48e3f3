package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(s))
	os.Exit(1)
}

func isTerminalOut() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// render prints value as colorized JSON when --json is set, otherwise
// hands off to the human-readable formatter.
func render(value interface{}, human func()) {
	if viper.GetBool("no-color") || !isTerminalOut() {
		color.NoColor = true
	}
	if viper.GetBool("json") {
		output, err := prettyjson.Marshal(value)
		if err != nil {
			fatal(err)
		}
		fmt.Println(string(output))
		return
	}
	human()
}
