//go:build !cli

package main

import (
	_ "storefront.GO/custom"

	"storefront.GO/cmd"
	"storefront.GO/config"
)

// main runs the server; the cli build tag exposes the full command set instead.
func main() {
	config.LoadEnv()
	cmd.ExecuteServe()
}
