// Package main provides the CLI entrypoint for input-object-generator.
//
// input-object-generator is a Go codegen tool that:
//   - Parses Go packages (AST + go/types) to find //gql:input structs
//   - Resolves GraphQL names, codecs and defaults for every field
//   - Generates CreateTypeInfo, ParseValue and ToValue methods
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"input-object-generator/internal/cli"
)

func main() {
	log.SetFormatter(&log.TextFormatter{TimestampFormat: "15:04:05", FullTimestamp: true})

	if err := cli.RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
