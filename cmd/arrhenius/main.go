/*
Copyright © 2026 the Arrhenius authors.
This file is part of Arrhenius.

Arrhenius is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Arrhenius is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Arrhenius.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command arrhenius is a command-line interface for calculating chemical
// reaction rate constants.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/arrhenius/arrheniusutil"
)

func main() {
	if len(os.Args) == 1 { // Without a command, start the web interface.
		os.Args = append(os.Args, "serve", "--Open")
	}
	if err := arrheniusutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
