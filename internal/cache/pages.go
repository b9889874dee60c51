package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/aparatus-booking/internal/config"
)

// Pages cacheia o payload da página pública de cada barbearia.
// Disponibilidade NUNCA passa por aqui: slot cacheado é duplo
// agendamento esperando para acontecer; só o catálogo (barbearia,
// serviços, barbeiros) é cacheado, e toda mutação invalida.
type Pages struct {
	rdb *redis.Client
	ttl time.Duration
}

const pageTTL = 10 * time.Minute

func NewRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

func NewPages(rdb *redis.Client) *Pages {
	return &Pages{
		rdb: rdb,
		ttl: pageTTL,
	}
}

func shopKey(slug string) string {
	return "public:shop:" + slug
}

// Get retorna o payload cacheado, ou (nil, false) em miss ou redis
// indisponível. Cache nunca derruba a página pública
func (p *Pages) Get(ctx context.Context, slug string) ([]byte, bool) {
	payload, err := p.rdb.Get(ctx, shopKey(slug)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (p *Pages) Set(ctx context.Context, slug string, payload []byte) {
	p.rdb.Set(ctx, shopKey(slug), payload, p.ttl)
}

func (p *Pages) InvalidateShop(ctx context.Context, slug string) error {
	return p.rdb.Del(ctx, shopKey(slug)).Err()
}
