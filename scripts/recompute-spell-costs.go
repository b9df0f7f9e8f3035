// One-off maintenance tool: after a rule-table change, stored spell
// documents can carry stale computed blocks. This scans every spell,
// recomputes its cost against the current catalog, and reports drift.
// Set APPLY=1 to rewrite drifted documents in place.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/spellwright/grimoire-api/internal/engine/spellcost"
	"github.com/spellwright/grimoire-api/internal/entities"
	"github.com/spellwright/grimoire-api/internal/repositories/catalog"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	apply := os.Getenv("APPLY") == "1"

	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}
	client := goredis.NewClient(opt)
	ctx := context.Background()

	catalogRepo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	if err != nil {
		log.Fatal("Failed to create catalog repository:", err)
	}

	keys, err := client.Keys(ctx, "spell:*").Result()
	if err != nil {
		log.Fatal("Failed to list spell keys:", err)
	}

	scanned, drifted, failed := 0, 0, 0
	for _, key := range keys {
		// Skip the author index sets, which share the prefix.
		if strings.HasPrefix(key, "spell:author:") {
			continue
		}

		raw, err := client.Get(ctx, key).Result()
		if err != nil {
			log.Printf("skip %s: %v", key, err)
			failed++
			continue
		}

		var doc entities.SpellDoc
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			log.Printf("skip %s: unmarshal: %v", key, err)
			failed++
			continue
		}
		scanned++

		resolved, err := catalogRepo.ResolveEffects(ctx, catalog.ResolveEffectsInput{
			EffectIDs: doc.Input.EffectIDs,
		})
		if err != nil {
			log.Printf("skip %s: resolve effects: %v", key, err)
			failed++
			continue
		}

		fresh, err := spellcost.Resolve(doc.Input, resolved.Effects)
		if err != nil {
			log.Printf("skip %s: recompute: %v", key, err)
			failed++
			continue
		}

		if fresh == doc.Computed {
			continue
		}
		drifted++
		fmt.Printf("%s: mp %d -> %d, category %s -> %s\n",
			key, doc.Computed.MPCost, fresh.MPCost, doc.Computed.Category, fresh.Category)

		if apply {
			doc.Computed = fresh
			data, err := json.Marshal(&doc)
			if err != nil {
				log.Printf("skip %s: marshal: %v", key, err)
				failed++
				continue
			}
			if err := client.Set(ctx, key, data, 0).Err(); err != nil {
				log.Printf("failed to rewrite %s: %v", key, err)
				failed++
			}
		}
	}

	fmt.Printf("scanned %d, drifted %d, failed %d (apply=%v)\n", scanned, drifted, failed, apply)
}
