// Package expand 提供区间展开命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-csrange/internal/command"
	"github.com/lwmacct/251207-go-pkg-csrange/internal/config"
)

// Command 展开命令
var Command = NewCommand("expand")

// NewCommand 创建展开命令，name 用于区分子命令与独立的 expand-range 程序。
func NewCommand(name string) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     "展开逗号分隔的区间列表，例如 'Te3/12-14,Gi1/1-3'",
		ArgsUsage: "[csrange ...] (省略或 '-' 时逐行读取标准输入)",
		Action:    action,
		Flags: []cli.Flag{
			command.ConfigFlag(),
			&cli.BoolFlag{
				Name:    "expand-resolve",
				Aliases: []string{"r"},
				Value:   command.Defaults.Expand.Resolve,
				Usage:   "展开接口缩写 (Gi → GigabitEthernet)",
			},
			&cli.IntFlag{
				Name:    "expand-limit",
				Aliases: []string{"n"},
				Value:   command.Defaults.Expand.Limit,
				Usage:   "单次展开的条目上限, 0 表示使用内置上限 (16777216)",
			},
			&cli.StringSliceFlag{
				Name:    "expand-interface-types",
				Aliases: []string{"t"},
				Usage:   "追加的接口类型 (规范写法)",
			},
			&cli.StringFlag{
				Name:    "output-format",
				Aliases: []string{"o"},
				Value:   command.Defaults.Output.Format,
				Usage:   "输出格式: " + config.FormatLines + " / " + config.FormatJSON + " / " + config.FormatYAML,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: command.Defaults.Log.Level,
				Usage: "日志级别: debug / info / warn / error",
			},
		},
	}
}
