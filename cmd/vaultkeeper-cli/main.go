package main

import "vaultkeeper/cmd/vaultkeeper-cli/cmd"

func main() {
	cmd.Execute()
}
