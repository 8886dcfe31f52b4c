/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/dynadojo/dojo-cli/cmd"

func main() {
	cmd.Execute()
}
