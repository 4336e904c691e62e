// Command quwatro runs the QuWaTrO console suite.
package main

import "github.com/mesh-intelligence/quwatro/internal/cli"

func main() {
	cli.Execute()
}
