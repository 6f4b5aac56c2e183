// Package main is the entry point for mercado-search.
package main

import (
	"github.com/donaldgifford/mercado-search/cmd/mercado-search/cmd"
)

func main() {
	cmd.Execute()
}
