package backend

import (
	"context"
	"net/url"

	"github.com/louisbranch/arenacontrol/internal/services/console/arena"
)

func dictatorPath(id string) string {
	return "/dictators/" + url.PathEscape(id)
}

func contestantPath(id string) string {
	return "/contestants/" + url.PathEscape(id)
}

// ListDictators returns every dictator in backend order.
func (c *Client) ListDictators(ctx context.Context) ([]arena.Dictator, error) {
	var out []arena.Dictator
	if err := c.Get(ctx, "/dictators", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDictator loads one dictator.
func (c *Client) GetDictator(ctx context.Context, id string) (arena.Dictator, error) {
	var out arena.Dictator
	err := c.Get(ctx, dictatorPath(id), &out)
	return out, err
}

// CreateDictator posts a new dictator.
func (c *Client) CreateDictator(ctx context.Context, d arena.Dictator) error {
	d.ID = ""
	return c.Post(ctx, "/dictators", d, nil)
}

// UpdateDictator replaces dictator id.
func (c *Client) UpdateDictator(ctx context.Context, id string, d arena.Dictator) error {
	d.ID = ""
	return c.Put(ctx, dictatorPath(id), d, nil)
}

// DeleteDictator removes dictator id.
func (c *Client) DeleteDictator(ctx context.Context, id string) error {
	return c.Delete(ctx, dictatorPath(id))
}

// ListDictatorContestants returns the contestants owned by dictatorID.
func (c *Client) ListDictatorContestants(ctx context.Context, dictatorID string) ([]arena.Contestant, error) {
	var out []arena.Contestant
	if err := c.Get(ctx, dictatorPath(dictatorID)+"/contestants", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateContestant adds a contestant under dictatorID.
func (c *Client) CreateContestant(ctx context.Context, dictatorID string, contestant arena.Contestant) error {
	contestant.ID = ""
	return c.Post(ctx, "/contestants/dictators/"+url.PathEscape(dictatorID)+"/contestants", contestant, nil)
}

// ListContestants returns every contestant across dictators.
func (c *Client) ListContestants(ctx context.Context) ([]arena.Contestant, error) {
	var out []arena.Contestant
	if err := c.Get(ctx, "/contestants", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetContestant loads one contestant.
func (c *Client) GetContestant(ctx context.Context, id string) (arena.Contestant, error) {
	var out arena.Contestant
	err := c.Get(ctx, contestantPath(id), &out)
	return out, err
}

// UpdateContestant replaces contestant id.
func (c *Client) UpdateContestant(ctx context.Context, id string, contestant arena.Contestant) error {
	contestant.ID = ""
	return c.Put(ctx, contestantPath(id), contestant, nil)
}

// DeleteContestant removes contestant id.
func (c *Client) DeleteContestant(ctx context.Context, id string) error {
	return c.Delete(ctx, contestantPath(id))
}

// ListBattles returns every recorded battle.
func (c *Client) ListBattles(ctx context.Context) ([]arena.Battle, error) {
	var out []arena.Battle
	if err := c.Get(ctx, "/battles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBattle records a battle.
func (c *Client) CreateBattle(ctx context.Context, b arena.Battle) error {
	b.ID = ""
	return c.Post(ctx, "/battles", b, nil)
}
