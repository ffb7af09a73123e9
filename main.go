package main

import (
	"os"
	"runtime/debug"

	"ftl/cmd"
	"ftl/logx"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			_ = logx.Errorf("LEDGER HOST CRASHED: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
