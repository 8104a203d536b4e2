package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-csrange/internal/command/expand"
	"github.com/lwmacct/251207-go-pkg-csrange/internal/command/types"
	"github.com/lwmacct/251207-go-pkg-csrange/internal/version"
)

func main() {
	app := &cli.Command{
		Name:    version.AppRawName,
		Usage:   "逗号分隔区间展开工具",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			version.Command,
			expand.Command,
			types.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
