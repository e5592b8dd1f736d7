package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	trace := flag.Bool("trace", false, "log each pipeline stage to stderr")
	ast := flag.Bool("ast", false, "print the AST instead of running the program (visualization is out of scope; reports an error)")
	st := flag.Bool("st", false, "print the standardized tree instead of running the program (visualization is out of scope; reports an error)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rpal [-trace] [-ast] [-st] <source-file>")
		os.Exit(2)
	}

	if !*trace {
		log.SetOutput(io.Discard)
	}

	if *ast || *st {
		fmt.Fprintln(os.Stderr, "rpal: AST/ST visualization is out of scope for this build")
		os.Exit(2)
	}

	path := flag.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rpal:", err)
		os.Exit(1)
	}

	log.Printf("evaluating %s", path)
	if err := Evaluate(string(source), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "rpal:", err)
		os.Exit(1)
	}
}
