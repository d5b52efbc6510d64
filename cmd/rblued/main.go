// Command rblued spins up one or more simulated host/controller
// links and drives them through the power-on and LE-advertise demo
// scenario the original project's main() ran directly.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/greedyhao/rblue"
	"github.com/greedyhao/rblue/hci"
	"github.com/greedyhao/rblue/host"
)

func main() {
	app := cli.NewApp()
	app.Name = "rblued"
	app.Usage = "run simulated HCI host/controller links"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "links", Value: 1, Usage: "number of simulated links to run"},
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "panic, fatal, error, warn, info, debug, trace"},
		cli.BoolFlag{Name: "advertise", Usage: "start LE advertising once a link finishes booting"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)
	entry := logrus.NewEntry(log)

	n := c.Int("links")
	advertise := c.Bool("advertise")

	links := make([]*rblue.Link, 0, n)
	for i := 0; i < n; i++ {
		l := rblue.NewLink(entry)
		links = append(links, l)
		linkColor(i).Printf("link %s: powering on\n", l.ID)
		l.Submit(rblue.AppCmdOn{})
	}
	defer func() {
		for _, l := range links {
			l.Stop()
		}
	}()

	for i, l := range links {
		// host.Host never times out a pending W4SendX sub-state on its
		// own; a controller that never answers leaves it stuck there
		// forever. This 5s deadline is rblued's problem to own, not
		// the host's.
		waitForWorking(l, 5*time.Second)
		addr, _ := l.Host.BDAddr()
		linkColor(i).Printf("link %s: working, bd_addr=%s\n", l.ID, addr)
		if advertise {
			l.Host.GAPAdvertisementsSetParams(
				0x0020, 0x0020, 0,
				hci.PublicDevice, hci.PublicDevice, hci.Address{},
				0x07, 0,
			)
			l.Submit(rblue.AppCmdLEAdvertise{Enable: true})
		}
	}

	select {}
}

func waitForWorking(l *rblue.Link, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if l.Host.State() == host.Working {
			return
		}
		time.Sleep(time.Millisecond)
	}
}

// linkColor gives each simulated link a distinct color, the way the
// original demo distinguished its two devices by name in the log.
func linkColor(i int) *color.Color {
	palette := []*color.Color{color.New(color.FgCyan), color.New(color.FgMagenta), color.New(color.FgYellow)}
	return palette[i%len(palette)]
}
