// Package types 提供接口类型列表命令。
package types

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-csrange/internal/command"
	"github.com/lwmacct/251207-go-pkg-csrange/pkg/csrange"
)

// Command 列出可用于缩写展开的接口类型（内置 + 配置追加）
var Command = &cli.Command{
	Name:  "types",
	Usage: "列出已知接口类型",
	Flags: []cli.Flag{
		command.ConfigFlag(),
		&cli.StringSliceFlag{
			Name:    "expand-interface-types",
			Aliases: []string{"t"},
			Usage:   "追加的接口类型 (规范写法)",
		},
	},
	Action: action,
}

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	expander := csrange.New(csrange.WithInterfaceTypes(cfg.Expand.InterfaceTypes...))
	for _, name := range expander.InterfaceTypes() {
		if _, err := fmt.Fprintln(cmd.Root().Writer, name); err != nil {
			return err
		}
	}

	return nil
}
