package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rzbill/kernlog"
	"github.com/spf13/cobra"
)

func main() {
	var (
		levelName string
		tag       string
	)

	rootCmd := &cobra.Command{
		Use:   "kernlogcat [message...]",
		Short: "Write messages to the kernel log",
		Long:  "kernlogcat writes its arguments, or stdin line by line, to the kernel ring buffer via /dev/kmsg. Requires write permission on the device (usually root).",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := kernlog.ParseLevel(levelName)
			if err != nil {
				return err
			}

			opts := []kernlog.Option{kernlog.WithLevel(kernlog.LevelTrace)}
			if tag != "" {
				opts = append(opts, kernlog.WithTag(tag))
			}
			logger, err := kernlog.New(opts...)
			if err != nil {
				return fmt.Errorf("open kernel log: %w", err)
			}
			defer logger.Close()

			if len(args) > 0 {
				logger.Log(kernlog.Record{Level: level, Message: strings.Join(args, " ")})
				return nil
			}
			sc := bufio.NewScanner(os.Stdin)
			for sc.Scan() {
				logger.Log(kernlog.Record{Level: level, Message: sc.Text()})
			}
			return sc.Err()
		},
	}
	rootCmd.Flags().StringVar(&levelName, "level", "info", "Level: error|warn|info|debug|trace")
	rootCmd.Flags().StringVar(&tag, "tag", "", "Tag for each line (default: program name)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
