package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tuit"
	"github.com/grindlemire/go-tuit/internal/config"
)

func (a *App) promptCmd() *cobra.Command {
	var (
		question string
		labels   []string
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Show a centred prompt with a row of buttons",
		Long: `Show a question above a row of buttons on a backdrop in the middle of
the screen. Click a button or use the arrow keys and press Enter to choose.
The chosen label is printed once the prompt closes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(labels) == 0 {
				return fmt.Errorf("prompt needs at least one label")
			}

			w, buttons := promptDemo(question, labels, a.cfg.Theme.Colours())
			res, err := a.show(cmd, w, promptWidth, promptHeight)
			if err != nil {
				return err
			}

			if a.cfg.Display.Renderer != config.RendererANSI && res == tuit.LifecycleEnd {
				colorResult.Fprintln(cmd.OutOrStdout(), buttons.SelectedLabel())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&question, "question", "q", "Continue?", "Question shown above the buttons")
	cmd.Flags().StringSliceVarP(&labels, "labels", "l", []string{" Yes ", " No "}, "Button labels, left to right")
	return cmd
}

func (a *App) splitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split",
		Short: "Show text in both halves of a split view",
		Long:  `Show the two halves of a split view, each with its own text. Press q or Escape to quit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := a.show(cmd, untilQuit(splitDemo()), splitWidth, splitHeight)
			return err
		},
	}
}

func (a *App) stackingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stacking",
		Short: "Show three text widgets stacked in the centre",
		Long:  `Show three text widgets stacked on top of each other. Press q or Escape to quit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := a.show(cmd, untilQuit(stackingDemo()), stackingWidth, stackingHeight)
			return err
		},
	}
}
