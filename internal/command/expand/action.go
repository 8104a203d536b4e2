package expand

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251207-go-pkg-csrange/internal/command"
	"github.com/lwmacct/251207-go-pkg-csrange/internal/config"
	"github.com/lwmacct/251207-go-pkg-csrange/pkg/csrange"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	root := cmd.Root()
	logger := command.NewLogger(root.ErrWriter, cfg.Log)
	slog.SetDefault(logger)

	expander := csrange.New(
		csrange.WithResolve(cfg.Expand.Resolve),
		csrange.WithLimit(cfg.Expand.Limit),
		csrange.WithInterfaceTypes(cfg.Expand.InterfaceTypes...),
		csrange.WithLogger(logger),
	)

	inputs, err := readInputs(cmd.Args().Slice(), root.Reader)
	if err != nil {
		return err
	}

	items := []string{}
	for _, input := range inputs {
		expanded, err := expander.Expand(input)
		if err != nil {
			return err
		}
		items = append(items, expanded...)
	}

	slog.Debug("Expanded", "inputs", len(inputs), "items", len(items))

	return writeItems(root.Writer, cfg.Output.Format, items)
}

// readInputs 返回命令行参数；无参数或唯一参数为 "-" 时逐行读取 r。
func readInputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 && (len(args) != 1 || args[0] != "-") {
		return args, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return inputs, nil
}

// writeItems 按格式输出展开结果。
func writeItems(w io.Writer, format string, items []string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(items)
	case config.FormatYAML:
		out, err := yamlv3.Marshal(items)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = w.Write(out)

		return err
	default:
		for _, item := range items {
			if _, err := fmt.Fprintln(w, item); err != nil {
				return err
			}
		}

		return nil
	}
}
