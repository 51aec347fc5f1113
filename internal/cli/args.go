package cli

import (
	"fmt"
	"os"
	"strings"
)

// osExit is a variable that can be mocked in tests
var osExit = os.Exit

const helpText = `mongodb-mcp - MongoDB Model Context Protocol Server

Usage:
  mongodb-mcp [OPTIONS]

Options:
  -h, --help                          Show this help message
  -v, --version                       Show version information
  --mongodb-uri <URI>                 MongoDB connection URI (overrides env var)
  --mongodb-database <DATABASE>       Database name (overrides env var)
  --transport <stdio|http>            Transport mode (overrides env var)
  --http-host <HOST>                  HTTP listen host (overrides env var)
  --http-port <PORT>                  HTTP listen port (overrides env var)

Required Environment Variables:
  MONGODB_URI       MongoDB connection URI
  MONGODB_DATABASE  Database name

Optional Environment Variables:
  MONGODB_SCHEMA_SAMPLE_SIZE  Documents sampled per collection for schema inference (default: 100)
  MONGODB_TELEMETRY           Enable/disable telemetry (default: true)
  MONGODB_LOG_LEVEL           Log level: debug, info, warn, error (default: info)
  MONGODB_LOG_FORMAT          Log format: text or json (default: text)
  MONGODB_MCP_TRANSPORT       Transport mode: stdio or http (default: stdio)
  MONGODB_MCP_HTTP_HOST       HTTP listen host (default: 127.0.0.1)
  MONGODB_MCP_HTTP_PORT       HTTP listen port (default: 8080)
  MONGODB_MCP_HTTP_PATH       HTTP endpoint path (default: /mcp)
  MONGODB_MCP_HTTP_ALLOWED_ORIGINS  Comma-separated list of allowed CORS origins

Examples:
  # Using environment variables
  MONGODB_URI=mongodb://localhost:27017 MONGODB_DATABASE=app mongodb-mcp

  # Using CLI flags (takes precedence over environment variables)
  mongodb-mcp --mongodb-uri mongodb://localhost:27017 --mongodb-database app

For more information, visit: https://github.com/mongodb/mcp
`

// HandleArgs processes command-line arguments for version and help flags.
// It exits the program after displaying the requested information.
// If unknown flags are encountered, it prints an error message and exits.
// Known configuration flags are skipped so the flag package can handle them
// later in main.
func HandleArgs(version string) {
	if len(os.Args) <= 1 {
		return
	}

	flags := make(map[string]bool)
	var err error
	i := 1 // os.Args[0] is the program name, not a flag

	for i < len(os.Args) {
		arg := os.Args[i]
		switch arg {
		case "-h", "--help":
			flags["help"] = true
			i++
		case "-v", "--version":
			flags["version"] = true
			i++
		// Allow configuration flags to be parsed by the flag package
		case "--mongodb-uri", "--mongodb-database", "--transport", "--http-host", "--http-port":
			// Check if there's a value following the flag
			if i+1 >= len(os.Args) {
				err = fmt.Errorf("%s requires a value", arg)
				break
			}
			// Check if next argument is another flag (starts with --)
			nextArg := os.Args[i+1]
			if strings.HasPrefix(nextArg, "--") {
				err = fmt.Errorf("%s requires a value (got flag %s instead)", arg, nextArg)
				break
			}
			// Safe to skip flag and value - let flag package handle them
			i += 2
		default:
			if arg == "--" {
				// Stop processing our flags, let flag package handle the rest
				i = len(os.Args)
				break
			}
			err = fmt.Errorf("unknown flag or argument: %s", arg)
			i++
		}
		if err != nil {
			break
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
	}

	if flags["help"] {
		fmt.Print(helpText)
		osExit(0)
	}

	if flags["version"] {
		fmt.Printf("mongodb-mcp version: %s\n", version)
		osExit(0)
	}
}
