package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	cli "github.com/spf13/pflag"

	log "log/slog"

	"cabin/pkg/wire"
)

func main() {
	url := cli.StringP("url", "u", "ws://localhost:8092/ws", "Daemon websocket url")
	quick := cli.StringP("quick", "q", "", "Send one quick action and exit")
	cli.Parse()

	c, err := wire.Dial(*url, 2*time.Second)
	if err != nil {
		log.Error("Failed to connect to daemon", "url", *url, "err", err)
		os.Exit(1)
	}
	defer c.Close()

	if *quick != "" {
		if err := c.Send(wire.Text(wire.KindQuickAction, *quick)); err != nil {
			log.Error("Failed to send quick action", "err", err)
			os.Exit(1)
		}
		// give the daemon a beat to echo the reply
		printUntilIdle(c)
		return
	}

	go readLoop(c)

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := c.Send(wire.Text(wire.KindUserText, text)); err != nil {
			log.Error("Failed to send", "err", err)
		}
	}
}

func readLoop(c *wire.Client) {
	for {
		in := c.Read()
		switch in.Kind {
		case wire.ReadOK:
			printFrame(in.Frame)
		case wire.ConnClose:
			log.Warn("Daemon went away, reconnecting")
			c.TryReconn()
		case wire.ReadFailure:
			log.Error("Bad frame", "err", in.Err)
		}
	}
}

// printUntilIdle drains replies for a quick action until the stream pauses.
func printUntilIdle(c *wire.Client) {
	done := make(chan struct{})
	go func() {
		for {
			in := c.Read()
			if in.Kind != wire.ReadOK {
				close(done)
				return
			}
			printFrame(in.Frame)
		}
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
	}
}

func printFrame(f wire.Frame) {
	switch f.Kind {
	case wire.KindUser:
		fmt.Printf("\r你:   %s\n> ", f.Text)
	case wire.KindAssistant:
		fmt.Printf("\r助手: %s\n> ", f.Text)
	case wire.KindError:
		fmt.Printf("\r!!    %s\n> ", f.Text)
	case wire.KindState:
		// snapshots are for screens, not the terminal
	}
}
