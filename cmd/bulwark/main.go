package main

import (
	"fmt"
	"os"

	"github.com/ianozsvald/bulwark/pkg/checks"
)

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	if vs := checks.Extract(err); vs != nil {
		for _, v := range vs {
			fmt.Fprintln(os.Stdout, v)
		}
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(2)
}
