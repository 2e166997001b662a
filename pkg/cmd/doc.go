// Package cmd provides the CLI for the flakefmt tool.
//
// The application is assembled with fx: Module provides the grammar, the
// parser and every command, then invokes Run, which executes the CLI once the
// fx application starts.
//
// # Available Commands
//
//   - fmt: Format SQL files, directories or standard input
//
// # Global Options
//
//   - --verbose: Enable debug logging on stderr
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	flakefmt fmt models/users.sql            # Print the formatted file
//	flakefmt fmt -w models/                  # Rewrite every .sql file in place
//	flakefmt fmt -l models/                  # List files that need formatting
//	flakefmt fmt --check models/             # Fail when any file needs formatting
//	cat query.sql | flakefmt fmt -           # Format standard input
//	flakefmt fmt -c ci/flakefmt.yaml models/ # Use an explicit config file
//
// The fmt command reads .flakefmt.yaml from the working directory when it
// exists. The config path can be changed with --config or FLAKEFMT_CONFIG.
package cmd
