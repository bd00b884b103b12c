// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Command shinyhogctl is a thin CLI over the ramhog and txinfo packages:
// compute a ShinyHash digest, or drive a TxInfo store by hand.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/awais3344/shinycoin/internal/nodelog"
	"github.com/awais3344/shinycoin/pkg/ramhog"
	"github.com/awais3344/shinycoin/pkg/txinfo"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	logger, err := nodelog.New(os.Getenv("SHINYHOG_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	app := &cli.App{
		Name:    "shinyhogctl",
		Usage:   "compute ShinyHash digests and drive a TxInfo store",
		Version: VERSION,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a TOML config file"},
		},
		Commands: []*cli.Command{
			hashCommand(logger),
			storeCommand(logger),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("shinyhogctl failed", zap.Error(err))
		os.Exit(1)
	}
}

func hashCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "hash",
		Usage: "compute a RamHog digest of --input",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Required: true, Usage: "input bytes, taken literally as UTF-8"},
			&cli.UintFlag{Name: "n", Usage: "scratchpad count (0 = use config/reference default)"},
			&cli.UintFlag{Name: "c", Usage: "words per scratchpad (0 = use config/reference default)"},
			&cli.UintFlag{Name: "i", Usage: "walk iterations (0 = use config/reference default)"},
			&cli.IntFlag{Name: "output-size", Value: ramhog.ReferenceOutputSize, Usage: "digest length in bytes"},
			&cli.BoolFlag{Name: "reference", Usage: "use the process-wide singleton at reference parameters"},
		},
		Action: func(c *cli.Context) error {
			input := []byte(c.String("input"))

			if c.Bool("reference") {
				digest, err := ramhog.ShinyHash(input, logger)
				if err != nil {
					return err
				}
				fmt.Println(hex.EncodeToString(digest))
				return nil
			}

			cfg, err := loadConfig(c.String("config"))
			if err != nil {
				return err
			}
			params := cfg.params()
			if n := c.Uint("n"); n != 0 {
				params.N = uint32(n)
			}
			if cc := c.Uint("c"); cc != 0 {
				params.C = uint32(cc)
			}
			if i := c.Uint("i"); i != 0 {
				params.I = uint32(i)
			}

			pads, err := ramhog.NewPads(int(params.N), int(params.C))
			if err != nil {
				return err
			}
			defer pads.Free()

			digest, err := ramhog.HashWithPads(input, params, pads, c.Int("output-size"))
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(digest))
			return nil
		},
	}
}

func storeCommand(logger *zap.Logger) *cli.Command {
	dbFlag := &cli.StringFlag{Name: "db", Usage: "path to the TxInfo SQLite database (overrides config)"}
	addressFlag := &cli.StringFlag{Name: "address", Required: true}
	typeFlag := &cli.StringFlag{Name: "type", Value: "normal", Usage: "normal|write_once|unique|id"}
	keyFlag := &cli.StringFlag{Name: "key", Required: true}

	openStore := func(c *cli.Context) (*txinfo.Store, error) {
		cfg, err := loadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
		path := cfg.DBPath
		if db := c.String("db"); db != "" {
			path = db
		}
		return txinfo.Open(path, txinfo.WithLogger(logger))
	}

	return &cli.Command{
		Name:  "store",
		Usage: "drive a TxInfo store",
		Subcommands: []*cli.Command{
			{
				Name:  "process",
				Flags: []cli.Flag{dbFlag, addressFlag, typeFlag, keyFlag, &cli.StringFlag{Name: "value", Required: true}},
				Action: func(c *cli.Context) error {
					store, err := openStore(c)
					if err != nil {
						return err
					}
					defer store.Close()

					addr, err := txinfo.NewAddress(c.String("address"))
					if err != nil {
						return err
					}
					keyType, err := parseKeyType(c.String("type"))
					if err != nil {
						return err
					}

					ok, reason, err := store.Process(addr, txinfo.Info{
						Key:   txinfo.Key{Type: keyType, KeyString: c.String("key")},
						Value: c.String("value"),
					})
					if err != nil {
						return err
					}
					if !ok {
						return cli.Exit(reason, 1)
					}
					fmt.Println("ok")
					return nil
				},
			},
			{
				Name:  "undo",
				Flags: []cli.Flag{dbFlag, addressFlag, typeFlag, keyFlag, &cli.StringFlag{Name: "value", Required: true}},
				Action: func(c *cli.Context) error {
					store, err := openStore(c)
					if err != nil {
						return err
					}
					defer store.Close()

					addr, err := txinfo.NewAddress(c.String("address"))
					if err != nil {
						return err
					}
					keyType, err := parseKeyType(c.String("type"))
					if err != nil {
						return err
					}

					ok, reason, err := store.Undo(addr, txinfo.Info{
						Key:   txinfo.Key{Type: keyType, KeyString: c.String("key")},
						Value: c.String("value"),
					})
					if err != nil {
						return err
					}
					if !ok {
						return cli.Exit(reason, 1)
					}
					fmt.Println("ok")
					return nil
				},
			},
			{
				Name:  "get",
				Flags: []cli.Flag{dbFlag, addressFlag, typeFlag, keyFlag},
				Action: func(c *cli.Context) error {
					store, err := openStore(c)
					if err != nil {
						return err
					}
					defer store.Close()

					addr, err := txinfo.NewAddress(c.String("address"))
					if err != nil {
						return err
					}
					keyType, err := parseKeyType(c.String("type"))
					if err != nil {
						return err
					}

					value, ok, err := store.Get(addr, txinfo.Key{Type: keyType, KeyString: c.String("key")})
					if err != nil {
						return err
					}
					if !ok {
						fmt.Println("<none>")
						return nil
					}
					fmt.Println(value)
					return nil
				},
			},
			{
				Name:  "dump",
				Flags: []cli.Flag{dbFlag},
				Action: func(c *cli.Context) error {
					store, err := openStore(c)
					if err != nil {
						return err
					}
					defer store.Close()

					lines, err := store.DumpLatestInfos()
					if err != nil {
						return err
					}
					for _, line := range lines {
						fmt.Println(line)
					}
					return nil
				},
			},
			{
				Name:  "reset",
				Flags: []cli.Flag{dbFlag},
				Action: func(c *cli.Context) error {
					store, err := openStore(c)
					if err != nil {
						return err
					}
					defer store.Close()
					return store.Reset()
				},
			},
		},
	}
}

func parseKeyType(s string) (txinfo.KeyType, error) {
	switch s {
	case "normal":
		return txinfo.Normal, nil
	case "write_once":
		return txinfo.WriteOnce, nil
	case "unique":
		return txinfo.Unique, nil
	case "id":
		return txinfo.ID, nil
	default:
		return 0, cli.Exit(fmt.Sprintf("unknown key type %q (want normal|write_once|unique|id)", s), 1)
	}
}
