package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compute":
		if err := runCompute(os.Args[2:]); err != nil {
			fail(err)
		}
	case "table":
		if err := runTable(os.Args[2:]); err != nil {
			fail(err)
		}
	case "validate":
		if err := runValidate(os.Args[2:]); err != nil {
			fail(err)
		}
	case "version":
		fmt.Println(version)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "throttlecal - throttle axis calibration curves")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  throttlecal compute  -f axis.yaml [-values 0,25,50] [-out out/curve] [-format md,json]")
	fmt.Fprintln(os.Stderr, "  throttlecal table    -f axis.yaml [-values 0,25,50]")
	fmt.Fprintln(os.Stderr, "  throttlecal validate -f axis.yaml")
	fmt.Fprintln(os.Stderr, "  throttlecal version")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
