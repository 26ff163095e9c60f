//go:build cli
// +build cli

package main

import (
	_ "github.com/programmer-santosh-main/thapaelectronics/custom"

	"github.com/programmer-santosh-main/thapaelectronics/cmd"
	"github.com/programmer-santosh-main/thapaelectronics/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
