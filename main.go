// cfxaddress converts between hex account identifiers and network qualified
// base32 addresses.
package main

import (
	"fmt"
	"os"

	"github.com/spacemeshos/go-cfxaddress/cmd"
	"github.com/spacemeshos/go-cfxaddress/cmd/cfxaddress"
)

var (
	version string
	commit  string
	branch  string
)

func main() { // run the app
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch
	if err := cfxaddress.GetCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
