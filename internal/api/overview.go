package api

import (
	"context"
	"fmt"

	"github.com/rickgao/poe-ninja-cli/internal/model"
)

// FetchCurrencyOverview fetches currency prices for a league. currencyType is
// "Currency" or "Fragment".
func (c *Client) FetchCurrencyOverview(ctx context.Context, league, currencyType string) (*model.CurrencyOverview, error) {
	body, err := c.get(ctx, "/currencyoverview", overviewQuery(league, currencyType))
	if err != nil {
		return nil, fmt.Errorf("get currency overview %s/%s: %w", league, currencyType, err)
	}

	overview, err := model.DecodeCurrencyOverview(body)
	if err != nil {
		return nil, fmt.Errorf("decode currency overview %s/%s: %w", league, currencyType, err)
	}

	c.logger.Debug("currency overview decoded",
		"league", league,
		"type", currencyType,
		"lines", len(overview.Lines),
		"details", len(overview.CurrencyDetails),
	)
	return overview, nil
}

// FetchItemOverview fetches item prices for a league and item type
// (e.g. "UniqueWeapon", "DivinationCard").
func (c *Client) FetchItemOverview(ctx context.Context, league, itemType string) (*model.ItemOverview, error) {
	body, err := c.get(ctx, "/itemoverview", overviewQuery(league, itemType))
	if err != nil {
		return nil, fmt.Errorf("get item overview %s/%s: %w", league, itemType, err)
	}

	overview, err := model.DecodeItemOverview(body)
	if err != nil {
		return nil, fmt.Errorf("decode item overview %s/%s: %w", league, itemType, err)
	}

	c.logger.Debug("item overview decoded",
		"league", league,
		"type", itemType,
		"lines", len(overview.Lines),
	)
	return overview, nil
}
