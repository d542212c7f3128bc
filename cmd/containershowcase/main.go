package main

import (
	"context"

	"go.llib.dev/containershowcase/pkg/showcase"
	"go.llib.dev/frameless/pkg/cli"
)

func main() {
	cli.Main(context.Background(), showcase.Command{})
}
