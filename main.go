/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/memtalk/memtalk/cmd"

func main() {
	cmd.Execute()
}
