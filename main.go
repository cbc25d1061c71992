package main

import "github.com/sterance/relic-info-extractor/cmd"

func main() {
	cmd.Execute()
}
