package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sku-mapper/internal/config"
	"sku-mapper/internal/order"
	"sku-mapper/internal/skumap/model"
	"sku-mapper/internal/skumap/service"
)

func resolveCmd() *cobra.Command {
	var customer string
	cmd := &cobra.Command{
		Use:   "resolve <description>",
		Short: "Resolve one item description against the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := config.SetupLogger(cfg)

			res := service.NewStore(cfg.CatalogFile, logger).
				Resolve(model.Request{Description: strings.Join(args, " "), Customer: customer})
			if err := printJSON(res); err != nil {
				return err
			}
			if !res.Found {
				return fmt.Errorf("no sku for %q", strings.Join(args, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&customer, "customer", "c", "", "customer name")
	return cmd
}

func orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order <file.txt>",
		Short: "Process a plain-text order document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := config.SetupLogger(cfg)

			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			store := service.NewStore(cfg.CatalogFile, logger)
			p := order.NewProcessor(store, order.NewERPSimulator(logger), logger)

			out, err := p.Process(cmd.Context(), string(text))
			if perr := printJSON(out); perr != nil {
				return perr
			}
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return nil
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
