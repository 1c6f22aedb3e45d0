package cmd

import (
	"flag"
	"fmt"
	"os"
)

// Options holds the CLI configuration parsed from arguments. Flags override
// whatever the config file says.
type Options struct {
	ConfigPath string // Path to the YAML config file
	ListenAddr string // HTTP listen address
	Upstream   string // Upstream directory base URL
	LogLevel   string // zerolog level name
	Pretty     bool   // Human-readable console logging
}

// ParseArgs parses command line arguments and returns Options.
func ParseArgs() (*Options, error) {
	opts := &Options{}

	flag.StringVar(&opts.ConfigPath, "c", "", "Path to config file")
	flag.StringVar(&opts.ConfigPath, "config", "", "Path to config file")
	flag.StringVar(&opts.ListenAddr, "addr", "", "HTTP listen address (e.g. :8080)")
	flag.StringVar(&opts.Upstream, "upstream", "", "Upstream directory base URL")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Pretty, "pretty", false, "Human-readable console logging")

	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", flag.Arg(0))
	}

	return opts, nil
}

// printUsage prints the usage information.
func printUsage() {
	fmt.Println("\nUsage:")
	fmt.Println("  radio-gateway [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -c, -config      Path to config file")
	fmt.Println("  -addr            HTTP listen address (default :8080)")
	fmt.Println("  -upstream        Upstream directory base URL")
	fmt.Println("  -log-level       Log level (debug, info, warn, error)")
	fmt.Println("  -pretty          Human-readable console logging")
	fmt.Println("\nExamples:")
	fmt.Println("  radio-gateway -addr :9090")
	fmt.Println("  radio-gateway -c gateway.yml -pretty")
	fmt.Println()
}

// PrintUsageAndExit prints usage and exits with code 1.
func PrintUsageAndExit() {
	printUsage()
	os.Exit(1)
}
