package main

import "github.com/masmgr/klmax-go/cmd"

func main() {
	cmd.Run()
}
