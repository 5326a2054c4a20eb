package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Image     string // Path to the image file to load.
	Origin    int    // Address at which the image is loaded.
	DumpBytes int    // Number of bytes of memory to hex dump.
	Registers bool   // Print the register file?
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Origin = 0
	c.DumpBytes = 256
	c.Registers = true

	flag.Usage = func() {
		fmt.Printf("%s [options] <image file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.IntVar(&c.Origin, "origin", c.Origin, "Address at which the image is loaded.")
	flag.IntVar(&c.DumpBytes, "dump", c.DumpBytes, "Number of bytes of memory to hex dump.")
	flag.BoolVar(&c.Registers, "registers", c.Registers, "Print the register file after loading.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	c.Image = flag.Arg(0)
	return &c
}
