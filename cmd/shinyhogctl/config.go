// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/awais3344/shinycoin/pkg/ramhog"
)

// config holds the overridable defaults for shinyhogctl: the store's
// backing database path and the RamHog parameters used when a "hash"
// invocation doesn't pass its own --n/--c/--i. CLI flags always take
// precedence over the config file.
type config struct {
	DBPath string `toml:"db_path"`
	Ramhog struct {
		N uint32 `toml:"n"`
		C uint32 `toml:"c"`
		I uint32 `toml:"i"`
	} `toml:"ramhog"`
}

func defaultConfig() config {
	cfg := config{DBPath: "shinyhog.db"}
	p := ramhog.ReferenceParams()
	cfg.Ramhog.N, cfg.Ramhog.C, cfg.Ramhog.I = p.N, p.C, p.I
	return cfg
}

// loadConfig reads a TOML config file at path, overlaying it onto the
// defaults. A path of "" returns the defaults unchanged.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func (c config) params() ramhog.Params {
	return ramhog.Params{N: c.Ramhog.N, C: c.Ramhog.C, I: c.Ramhog.I}
}
