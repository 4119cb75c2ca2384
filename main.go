package main

import "golang-ipv4cfg/cmd"

func main() {
	cmd.Execute()
}
