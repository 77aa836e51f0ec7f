package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-leo/starbuzz/beverage"
	"github.com/go-leo/starbuzz/internal/logger"
	"github.com/go-leo/starbuzz/menu"
	"github.com/go-leo/starbuzz/receipt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "starbuzz",
		Short:        "Order a coffee and print its description and cost",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return order(cmd, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	flags := cmd.Flags()
	flags.String(keyBase, "DarkRoast", "base beverage: "+fmt.Sprint(menu.Bases()))
	flags.StringSlice(keyWith, []string{"Mocha", "WhippedCream"}, "condiments, applied in order: "+fmt.Sprint(menu.Condiments()))
	flags.StringP(keyOutput, "o", receipt.FormatText, "output format: text, json or yaml")
	flags.String(keyLogLevel, "warn", "log level written to stderr")
	flags.String(keyConfig, "", "yaml config file")
	cmd.AddCommand(newMenuCommand(stdout))
	return cmd
}

func order(cmd *cobra.Command, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Debug("building order", zap.String("base", cfg.Base), zap.Strings("condiments", cfg.Condiments))
	b, err := menu.NewOrderBuilder(cfg.Base, menu.With(cfg.Condiments...)).Build(cmd.Context())
	if err != nil {
		log.Error("build order", zap.Error(err))
		return err
	}
	r, err := receipt.New(b)
	if err != nil {
		return err
	}
	log.Info("order built",
		zap.Stringer("id", r.ID),
		zap.String("leaf", beverage.Leaf(b).GetDescription()),
		zap.Int("condiments", len(beverage.Condiments(b))),
		zap.String("cost", receipt.FormatCost(r.Cost)),
	)
	return r.Write(stdout, cfg.Output)
}

func newMenuCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the beverages and condiments with their prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			condiments, err := menu.CondimentItems()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "BEVERAGE\tDESCRIPTION\tCOST")
			for _, item := range menu.BaseItems() {
				fmt.Fprintf(tw, "%s\t%s\t$%s\n", item.Name, item.Description, receipt.FormatCost(item.Cost))
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "CONDIMENT\tDESCRIPTION\tCOST")
			for _, item := range condiments {
				fmt.Fprintf(tw, "%s\t%s\t+$%s\n", item.Name, item.Description, receipt.FormatCost(item.Cost))
			}
			return tw.Flush()
		},
	}
}
