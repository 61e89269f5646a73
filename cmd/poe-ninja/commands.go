package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rickgao/poe-ninja-cli/internal/config"
	"github.com/rickgao/poe-ninja-cli/internal/display"
	"github.com/rickgao/poe-ninja-cli/internal/model"
	"github.com/rickgao/poe-ninja-cli/internal/query"
	"github.com/rickgao/poe-ninja-cli/internal/version"
)

var errExactNeedsName = errors.New("--exact requires --name")

type currencyArgs struct {
	league       string
	currencyType string
	name         *string
	exact        bool
}

func newCurrencyCmd(a *app) *cobra.Command {
	var league, currencyType, name string
	var exact bool

	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Show currency exchange prices",
		Example: `  poe-ninja currency
  poe-ninja currency -l Hardcore -n exalted
  poe-ninja currency -c Fragment --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCurrency(cmd.Context(), currencyArgs{
				league:       stringFlag(cmd, "league", league, a.cfg.Defaults.League),
				currencyType: stringFlag(cmd, "currency-type", currencyType, a.cfg.Defaults.CurrencyType),
				name:         optionalString(cmd, "name", name),
				exact:        exact,
			})
		},
	}

	cmd.Flags().StringVarP(&league, "league", "l", config.DefaultLeague, "league name")
	cmd.Flags().StringVarP(&currencyType, "currency-type", "c", config.DefaultCurrencyType, "currency type: Currency or Fragment")
	cmd.Flags().StringVarP(&name, "name", "n", "", "case-insensitive name substring")
	cmd.Flags().BoolVar(&exact, "exact", false, "match --name exactly instead of as a substring")
	return cmd
}

func (a *app) runCurrency(ctx context.Context, args currencyArgs) error {
	if args.exact && args.name == nil {
		return errExactNeedsName
	}
	if !known(currencyTypes, args.currencyType) {
		a.logger.Warn("unknown currency type, sending as given", "currency_type", args.currencyType)
	}

	a.renderer.Fetching("currency", args.league, args.currencyType)
	overview, err := a.client.FetchCurrencyOverview(ctx, args.league, args.currencyType)
	if err != nil {
		return fmt.Errorf("fetch currency data: %w", err)
	}

	var lines []model.CurrencyLine
	if args.exact {
		if l, ok := query.FindCurrencyByName(overview.Lines, *args.name); ok {
			lines = []model.CurrencyLine{l}
		}
	} else {
		lines = query.Currencies(overview.Lines, query.CurrencyQuery{Name: args.name})
	}

	a.logger.Debug("currencies selected", "total", len(overview.Lines), "shown", len(lines))

	rows := display.CurrencyRows(lines)
	display.AttachDetails(rows, overview)
	return a.renderer.RenderCurrencies(rows)
}

type itemArgs struct {
	league   string
	itemType string
	name     *string
	minChaos *float64
	maxChaos *float64
	exact    bool
}

func newItemCmd(a *app) *cobra.Command {
	var league, itemType, name string
	var minChaos, maxChaos float64
	var exact bool

	cmd := &cobra.Command{
		Use:   "item",
		Short: "Show item prices for one item type",
		Example: `  poe-ninja item -i UniqueArmour
  poe-ninja item -i DivinationCard --min-chaos 100 --max-chaos 1000
  poe-ninja item -i UniqueArmour -n "kaom's heart" --exact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runItem(cmd.Context(), itemArgs{
				league:   stringFlag(cmd, "league", league, a.cfg.Defaults.League),
				itemType: itemType,
				name:     optionalString(cmd, "name", name),
				minChaos: optionalFloat(cmd, "min-chaos", minChaos),
				maxChaos: optionalFloat(cmd, "max-chaos", maxChaos),
				exact:    exact,
			})
		},
	}

	cmd.Flags().StringVarP(&league, "league", "l", config.DefaultLeague, "league name")
	cmd.Flags().StringVarP(&itemType, "item-type", "i", "", "item type, see 'poe-ninja types'")
	cmd.Flags().StringVarP(&name, "name", "n", "", "case-insensitive name substring")
	cmd.Flags().Float64Var(&minChaos, "min-chaos", 0, "minimum chaos value, inclusive")
	cmd.Flags().Float64Var(&maxChaos, "max-chaos", 0, "maximum chaos value, inclusive")
	cmd.Flags().BoolVar(&exact, "exact", false, "match --name exactly instead of as a substring")
	_ = cmd.MarkFlagRequired("item-type")
	return cmd
}

func (a *app) runItem(ctx context.Context, args itemArgs) error {
	if args.exact && args.name == nil {
		return errExactNeedsName
	}
	if !known(itemTypes, args.itemType) {
		a.logger.Warn("unknown item type, sending as given", "item_type", args.itemType)
	}

	a.renderer.Fetching("item", args.league, args.itemType)
	overview, err := a.client.FetchItemOverview(ctx, args.league, args.itemType)
	if err != nil {
		return fmt.Errorf("fetch item data: %w", err)
	}

	q := query.ItemQuery{Name: args.name, MinChaos: args.minChaos, MaxChaos: args.maxChaos}
	var lines []model.ItemLine
	if args.exact {
		if l, ok := query.FindItemByName(overview.Lines, *args.name); ok {
			q.Name = nil
			lines = query.Items([]model.ItemLine{l}, q)
		}
	} else {
		lines = query.Items(overview.Lines, q)
	}

	a.logger.Debug("items selected", "total", len(overview.Lines), "shown", len(lines))

	return a.renderer.RenderItems(display.ItemRows(lines))
}

func newLeaguesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "leagues",
		Short: "List known league names",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.renderer.RenderList("Available League Names:", leagues,
				"Note: League names are case-sensitive. Use exact names as shown above.")
		},
	}
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List currency and item overview types",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if a.renderer.Format == display.FormatJSON {
				return a.renderer.WriteJSON(map[string][]string{
					"currencyTypes": currencyTypes,
					"itemTypes":     itemTypes,
				})
			}
			if err := a.renderer.RenderList("Currency Types:", currencyTypes, ""); err != nil {
				return err
			}
			fmt.Fprintln(a.out)
			return a.renderer.RenderList("Item Types:", itemTypes,
				"Note: Type names are case-sensitive. Use exact names as shown above.")
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Version output does not depend on config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.out, "%s %s\n", version.Product, version.String())
		},
	}
}
