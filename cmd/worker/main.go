/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/amberpay/go-weavr-sync/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
