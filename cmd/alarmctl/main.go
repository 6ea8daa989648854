package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"clockalert/internal/models"
	"clockalert/pkg/client"

	"github.com/urfave/cli"
)

const defaultAddr = "http://127.0.0.1:8080"

var errUsage = errors.New("missing argument")

func newApp(ctx context.Context, out io.Writer) *cli.App {
	var addr string

	app := cli.NewApp()
	app.Name = "alarmctl"
	app.Usage = "manage clockalert alarms from the terminal"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "addr, a",
			Value:       defaultAddr,
			EnvVar:      "CLOCKALERT_ADDR",
			Usage:       "address of the clockalert daemon",
			Destination: &addr,
		},
	}
	conn := func() *client.Client { return client.New(addr) }

	app.Commands = []cli.Command{
		{
			Name:      "add",
			Usage:     "add an alarm at HH:MM:SS",
			ArgsUsage: "TIME",
			Action: func(c *cli.Context) error {
				t := c.Args().First()
				if t == "" {
					return errUsage
				}
				if err := conn().Add(ctx, t); err != nil {
					return err
				}
				fmt.Fprintf(out, "alarm set for %s\n", t)
				return nil
			},
		},
		{
			Name:      "rm",
			Usage:     "remove an alarm by id",
			ArgsUsage: "ID",
			Action: func(c *cli.Context) error {
				id, err := strconv.ParseInt(c.Args().First(), 10, 64)
				if err != nil {
					return fmt.Errorf("invalid alarm id %q", c.Args().First())
				}
				return conn().Remove(ctx, id)
			},
		},
		{
			Name:    "ls",
			Aliases: []string{"list"},
			Usage:   "list alarms",
			Action: func(c *cli.Context) error {
				alarms, err := conn().List(ctx)
				if err != nil {
					return err
				}
				printAlarms(out, alarms)
				return nil
			},
		},
		{
			Name:  "watch",
			Usage: "print alarm ids as they trigger",
			Action: func(c *cli.Context) error {
				ids, err := conn().Watch(ctx)
				if err != nil {
					return err
				}
				for id := range ids {
					fmt.Fprintf(out, "alarm %d triggered\n", id)
				}
				return nil
			},
		},
	}
	return app
}

func printAlarms(w io.Writer, alarms []models.Alarm) {
	if len(alarms) == 0 {
		fmt.Fprintln(w, "no alarms")
		return
	}
	for _, a := range alarms {
		fmt.Fprintf(w, "%4d  %s\n", a.ID, a.Time)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(ctx, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "alarmctl:", err)
		os.Exit(1)
	}
}
