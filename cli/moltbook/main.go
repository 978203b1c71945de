package main

import (
	"os"

	moltbookcmder "github.com/moltbook/moltbook-cli/cmd/moltbook"
)

func main() {
	os.Exit(moltbookcmder.Execute())
}
