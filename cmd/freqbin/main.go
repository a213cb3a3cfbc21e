package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"freqbin"
)

func main() {
	payload, opts, err := freqbin.ParseCommandLine()
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("Could not parse configuration: %s\n\nUse freqbin --help for options\n", err)
		}
		os.Exit(1)
	}

	run, errs := freqbin.NewRun(payload, opts...)
	if len(errs) > 0 {
		fmt.Println("Error in config:")
		for _, e := range errs {
			fmt.Println(e)
		}
		os.Exit(1)
	}

	if err := run.Execute(context.Background()); err != nil {
		fmt.Println("Analysis error:", err)
		os.Exit(1)
	}

	os.Exit(0)
}
