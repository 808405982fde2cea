package main

import (
	"fmt"
	"os"
	"strings"

	cli "github.com/spf13/pflag"

	"cabin/internal/ipc"
)

func main() {
	socket := cli.StringP("socket", "s", ipc.DefaultSocketPath, "Daemon control socket")
	cli.Parse()

	args := cli.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: cabin-ctl [-s socket] <trigger|say|file|status|reset> [arg]")
		os.Exit(2)
	}

	cmd := args[0]
	arg := strings.Join(args[1:], " ")

	resp, err := ipc.SendCommand(*socket, cmd, arg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cabin-daemon not running:", err)
		os.Exit(1)
	}

	if !resp.OK {
		fmt.Fprintln(os.Stderr, "error:", resp.Text)
		os.Exit(1)
	}
	if resp.Text != "" {
		fmt.Println(resp.Text)
	}
}
