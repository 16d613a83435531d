/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"github.com/urfave/cli/v2"
)

var (
	shapeFlag = cli.Float64Flag{
		Name:  "shape",
		Usage: "shape of the Gamma distribution, at least 1",
		Value: 2,
	}
	rateFlag = cli.Float64Flag{
		Name:  "rate",
		Usage: "rate of the Gamma distribution",
		Value: 1,
	}
	countFlag = cli.IntFlag{
		Name:    "count",
		Aliases: []string{"n"},
		Usage:   "number of samples",
		Value:   100000,
	}
	chunksFlag = cli.IntFlag{
		Name:  "chunks",
		Usage: "number of chunks sampled concurrently",
		Value: 1,
	}
	seedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed of a reproducible pseudo-random source; 0 uses the system randomness",
	}
	keyFlag = cli.StringFlag{
		Name:  "key",
		Usage: "hex encoded 32-byte salsa20 key of a reproducible random stream; overrides --seed",
	}
	plotFlag = cli.PathFlag{
		Name:  "plot",
		Usage: "write an HTML chart of the density estimate and the analytic density to this file",
	}
	bandwidthFlag = cli.Float64Flag{
		Name:  "bandwidth",
		Usage: "kernel density bandwidth as a multiple of the sample standard deviation",
		Value: 0.04,
	}
)
