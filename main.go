// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/bemwalk/bemwalk/cmd/bemwalk"

func main() {
	cmd.Execute()
}
