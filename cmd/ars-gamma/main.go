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
	"fmt"
	"os"

	"github.com/fentec-project/goars/logger"
	"github.com/urfave/cli/v2"
)

// newGammaApp returns the command line application.
func newGammaApp() *cli.App {
	return &cli.App{
		Action:    runGamma,
		Name:      "Gamma sampler",
		HelpName:  "ars-gamma",
		Usage:     "draw Gamma samples by adaptive rejection sampling and compare them with the analytic density",
		Copyright: "(c) 2018 XLAB d.o.o",
		Flags: []cli.Flag{
			&shapeFlag,
			&rateFlag,
			&countFlag,
			&chunksFlag,
			&seedFlag,
			&keyFlag,
			&plotFlag,
			&bandwidthFlag,
			&logger.LogLevelFlag,
		},
	}
}

func main() {
	if err := newGammaApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
