package main

import "github.com/openmediastation/mediaserver/cmd"

func main() {
	cmd.Execute()
}
