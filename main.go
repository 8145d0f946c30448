package main

import (
	"fmt"
	"os"

	"fjacquet/training-report/cmd/count"
	"fjacquet/training-report/cmd/expiring"
	"fjacquet/training-report/cmd/fiscalyear"
	"fjacquet/training-report/cmd/interactive"
	"fjacquet/training-report/cmd/root"
	"fjacquet/training-report/cmd/validate"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(count.Cmd)
	root.Cmd.AddCommand(fiscalyear.Cmd)
	root.Cmd.AddCommand(expiring.Cmd)
	root.Cmd.AddCommand(interactive.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
