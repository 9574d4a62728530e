// Command payloads inspects result payload documents from the terminal.
package main

import "github.com/mesh-intelligence/payloads/internal/cli"

func main() {
	cli.Execute()
}
