// LogStats - Log Report Tool
//
// LogStats is a batch reporting tool that turns JSON-lines request logs
// into summary metrics. Point it at log files and get an average
// response time report, optionally narrowed to a single calendar date.
package main

import (
	"os"

	"logstats/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
