package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Imadeveloperrr/backend-test-v1/internal/model"
	"github.com/Imadeveloperrr/backend-test-v1/internal/services"

	"github.com/redis/go-redis/v9"
)

const partnerTTL = 60 * time.Second

func NewRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// PartnerCache is a read-through Redis layer over the partner store. Partner
// rows are immutable reference data, so a short TTL is safe; policy lookups
// are instant-dependent and pass straight through.
type PartnerCache struct {
	client *redis.Client
	next   services.PartnerStore
}

func NewPartnerCache(client *redis.Client, next services.PartnerStore) *PartnerCache {
	return &PartnerCache{client: client, next: next}
}

func (c *PartnerCache) FindPartner(ctx context.Context, id int64) (*model.Partner, error) {
	key := fmt.Sprintf("partner:%d", id)

	if raw, err := c.client.Get(ctx, key).Result(); err == nil {
		var p model.Partner
		if err := json.Unmarshal([]byte(raw), &p); err == nil {
			return &p, nil
		}
	}

	partner, err := c.next.FindPartner(ctx, id)
	if err != nil || partner == nil {
		return partner, err
	}

	if raw, err := json.Marshal(partner); err == nil {
		if err := c.client.Set(ctx, key, raw, partnerTTL).Err(); err != nil {
			log.Printf("[cache] failed to store %s: %v", key, err)
		}
	}
	return partner, nil
}

func (c *PartnerCache) FindEffectivePolicy(ctx context.Context, partnerID int64, at time.Time) (*model.FeePolicy, error) {
	return c.next.FindEffectivePolicy(ctx, partnerID, at)
}

func (c *PartnerCache) ListPartners(ctx context.Context) ([]model.Partner, error) {
	return c.next.ListPartners(ctx)
}

func (c *PartnerCache) ListPolicies(ctx context.Context, partnerID int64) ([]model.FeePolicy, error) {
	return c.next.ListPolicies(ctx, partnerID)
}
