/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package main

import (
	"github.com/CSE237SP25/chaching/cmd"
)

func main() {
	cmd.Execute()
}
