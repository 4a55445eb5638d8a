// SPDX-License-Identifier: MPL-2.0

package main

import cmd "git-superproject/cmd/superproject"

func main() {
	cmd.Execute()
}
