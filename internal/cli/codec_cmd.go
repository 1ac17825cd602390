package cli

import (
	"context"
	"fmt"

	"github.com/Chilos/project-gantt/internal/cli/formatter"
	"github.com/Chilos/project-gantt/internal/codec"
	"github.com/spf13/cobra"
)

func newEncodeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "encode BLOCK",
		Short: "Print a timeline's transport payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readModel(context.Background(), app, args[0])
			if err != nil {
				return err
			}
			payload, err := codec.Encode(t)
			if err != nil {
				return err
			}
			fmt.Println(payload)
			return nil
		},
	}
}

func newDecodeCmd(app *App) *cobra.Command {
	var chart bool

	cmd := &cobra.Command{
		Use:   "decode PAYLOAD",
		Short: "Decode a transport payload and show the model",
		Long: "Decode a transport payload and show the model. Payloads from any " +
			"supported transport generation are accepted; unreadable payloads " +
			"decode to the default model.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := codec.Decode(args[0])

			fmt.Printf("%s\n", formatter.FormatTimelineSummary(t))
			if len(t.Projects) > 0 {
				fmt.Printf("\n%s\n", formatter.FormatProjectList(t.Projects))
			}
			if chart {
				fmt.Printf("\n%s\n", formatter.RenderGantt(t, t.StartDate))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&chart, "chart", false, "Render the decoded model as a chart")

	return cmd
}
