package reconcile

import (
	"context"
	"fmt"

	"emoji-sync/core/discord"
	"emoji-sync/core/inventory"

	"go.uber.org/zap"
)

// applier issues the remote mutations of one run. Every call yields an
// ItemResult; nothing here returns early on a failed item.
type applier struct {
	client  discord.Client
	appID   string
	scanner *inventory.Scanner
	logger  *zap.Logger
}

func (a *applier) deleteAll(ctx context.Context, names []string, remote []discord.Emoji) []ItemResult {
	byName := make(map[string]discord.Emoji, len(remote))
	for _, e := range remote {
		byName[e.Name] = e
	}

	results := make([]ItemResult, 0, len(names))
	for _, name := range names {
		results = append(results, a.delete(ctx, name, byName))
	}
	return results
}

func (a *applier) delete(ctx context.Context, name string, byName map[string]discord.Emoji) ItemResult {
	item := ItemResult{Op: OpDelete, Name: name}

	emoji, ok := byName[name]
	if !ok {
		item.Err = fmt.Errorf("no remote id for %s", name)
		a.logFailure(item)
		return item
	}

	if err := a.client.Delete(ctx, a.appID, emoji.ID); err != nil {
		item.Err = err
		a.logFailure(item)
		return item
	}

	item.ID = emoji.ID
	a.logger.Info("Deleted emoji", zap.String("name", name), zap.String("id", emoji.ID))
	return item
}

func (a *applier) createAll(ctx context.Context, names []string, assets []inventory.Asset) []ItemResult {
	byName := make(map[string]inventory.Asset, len(assets))
	for _, asset := range assets {
		byName[asset.Name] = asset
	}

	results := make([]ItemResult, 0, len(names))
	for _, name := range names {
		results = append(results, a.create(ctx, name, byName))
	}
	return results
}

func (a *applier) create(ctx context.Context, name string, byName map[string]inventory.Asset) ItemResult {
	item := ItemResult{Op: OpCreate, Name: name}

	asset, ok := byName[name]
	if !ok {
		item.Err = fmt.Errorf("no local file for %s", name)
		a.logFailure(item)
		return item
	}

	data, err := a.scanner.ReadFile(asset)
	if err != nil {
		item.Err = err
		a.logFailure(item)
		return item
	}

	created, err := a.client.Create(ctx, a.appID, name, data, MIMEType(asset.Extension))
	if err != nil {
		item.Err = err
		a.logFailure(item)
		return item
	}

	item.ID = created.ID
	a.logger.Info("Created emoji", zap.String("name", name), zap.String("id", created.ID))
	return item
}

func (a *applier) logFailure(item ItemResult) {
	a.logger.Error("Emoji "+string(item.Op)+" failed",
		zap.String("name", item.Name),
		zap.Error(item.Err),
	)
}
