/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ssargent/fixhub/cmd/fixhub/cmd"
)

func main() {
	cmd.Execute()
}
