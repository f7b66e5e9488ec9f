// Command mc767 is a minimal command-line client exercising the protocol
// runtime: a server-list-ping status check, and a headless Play-phase
// session that logs entity/world packets as they arrive.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	uuid "github.com/satori/go.uuid"
	"github.com/urfave/cli"

	"github.com/kestrel-mc/mc767/conn"
	"github.com/kestrel-mc/mc767/mclog"
	"github.com/kestrel-mc/mc767/packet/s2c"
	"github.com/kestrel-mc/mc767/types"
)

func main() {
	app := cli.NewApp()
	app.Name = "mc767"
	app.Usage = "a client-side Minecraft Java Edition (protocol 767 / 1.21.1) session tool"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		{
			Name:      "status",
			Usage:     "perform a server list ping and print the result",
			ArgsUsage: "<host[:port]>",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "debug", Usage: "trace every packet sent and received"},
			},
			Action: statusCommand,
		},
		{
			Name:      "login",
			Usage:     "log in, complete Configuration, and print Play events until disconnected",
			ArgsUsage: "<host[:port]>",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "name", Value: "mc767", Usage: "offline-mode username"},
				cli.BoolFlag{Name: "debug", Usage: "trace every packet sent and received"},
			},
			Action: loginCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "mc767:", err)
		os.Exit(1)
	}
}

func splitHostPort(arg string) (string, uint16, error) {
	host, portStr, ok := strings.Cut(arg, ":")
	if !ok {
		return arg, 25565, nil
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	return host, uint16(port), nil
}

func statusCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowCommandHelp(c, "status")
	}
	host, port, err := splitHostPort(c.Args().Get(0))
	if err != nil {
		return err
	}

	opts := conn.DefaultOptions()
	opts.Debug = c.Bool("debug")

	st, latency, err := conn.Status(host, port, opts)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}

	desc, err := st.DescriptionText()
	if err != nil {
		return fmt.Errorf("description: %w", err)
	}
	fmt.Printf("version:  %s (protocol %d)\n", st.Version.Name, st.Version.Protocol)
	fmt.Printf("players:  %s\n", st.PlayersCount())
	if sample := st.PlayersList(); len(sample) > 0 {
		fmt.Printf("sample:   %s\n", strings.Join(sample, ", "))
	}
	fmt.Printf("motd:     %s\n", desc)
	fmt.Printf("latency:  %s\n", latency)

	if favicon, err := st.FaviconBytes(); err != nil {
		fmt.Printf("favicon:  invalid (%v)\n", err)
	} else if favicon != nil {
		fmt.Printf("favicon:  %d bytes (valid PNG)\n", len(favicon))
	}
	return nil
}

func loginCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowCommandHelp(c, "login")
	}
	host, port, err := splitHostPort(c.Args().Get(0))
	if err != nil {
		return err
	}

	opts := conn.DefaultOptions()
	opts.Debug = c.Bool("debug")

	session, err := conn.Dial(c.Args().Get(0), opts)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer func() { _ = session.Close() }()

	playerUUID, err := types.UUIDFromBytes(uuid.NewV4().Bytes())
	if err != nil {
		return fmt.Errorf("generate offline uuid: %w", err)
	}

	profile, err := conn.Login(session, host, port, c.String("name"), playerUUID)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	fmt.Printf("logged in as %s (%s)\n", profile.Username, profile.UUID)

	if err := conn.Configuration(session); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	fmt.Println("entered play")

	log := mclog.New()
	if opts.Debug {
		log.SetLevel(mclog.LevelDebug)
	}

	err = conn.Play(session, func(ev conn.PlayEvent) error {
		switch p := ev.Packet.(type) {
		case *s2c.Login:
			fmt.Printf("joined world %s (entity id %d)\n", p.DimensionName, p.EntityID)
		default:
			log.Debug("play event: %T", p)
		}
		return nil
	})
	var disconnected *conn.Disconnected
	if errors.As(err, &disconnected) {
		fmt.Printf("disconnected: %s\n", disconnected.Reason)
		return nil
	}
	return err
}
