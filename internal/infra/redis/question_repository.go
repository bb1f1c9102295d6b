package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"flashlight-portfolio/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// BankLoader fetches a question bank from a backing store (YAML file, Postgres, SQLite).
type BankLoader interface {
	LoadBank(ctx context.Context, bankID string) (domain.QuestionBank, error)
}

// QuestionRepository caches banks in Redis (hash per bank) and falls back to a loader on cache miss.
// Questions are stored as: HSET bank:{bankID}:questions {index} {question json}
type QuestionRepository struct {
	client *redis.Client
	loader BankLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex
}

func NewQuestionRepository(client *redis.Client, loader BankLoader, ttl time.Duration) *QuestionRepository {
	return &QuestionRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *QuestionRepository) GetBank(ctx context.Context, bankID string) (domain.QuestionBank, error) {
	key := r.questionsKey(bankID)

	if bank, ok := r.fromCache(ctx, bankID, key); ok {
		return bank, nil
	}

	result, err, _ := r.sf.Do(bankID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if bank, ok := r.fromCache(ctx, bankID, key); ok {
			return bank, nil
		}

		bank, err := r.loader.LoadBank(ctx, bankID)
		if err != nil {
			return domain.QuestionBank{}, err
		}

		ttl := r.ttlWithJitter()
		pipe := r.client.Pipeline()
		pipe.Del(ctx, key)
		for i, q := range bank.Questions {
			raw, err := json.Marshal(q)
			if err != nil {
				return domain.QuestionBank{}, err
			}
			pipe.HSet(ctx, key, strconv.Itoa(i), raw)
		}
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		// cache fill is best-effort, the loaded bank is still served
		_, _ = pipe.Exec(ctx)

		return bank, nil
	})
	if err != nil {
		return domain.QuestionBank{}, err
	}
	return result.(domain.QuestionBank).Clone(), nil
}

func (r *QuestionRepository) fromCache(ctx context.Context, bankID, key string) (domain.QuestionBank, bool) {
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil || len(fields) == 0 {
		return domain.QuestionBank{}, false
	}
	bank, err := buildBankFromCache(bankID, fields)
	if err != nil {
		return domain.QuestionBank{}, false
	}
	return bank, true
}

func (r *QuestionRepository) questionsKey(bankID string) string {
	return "bank:" + bankID + ":questions"
}

// buildBankFromCache restores question order from the numeric hash fields.
func buildBankFromCache(bankID string, fields map[string]string) (domain.QuestionBank, error) {
	indexes := make([]int, 0, len(fields))
	byIndex := make(map[int]string, len(fields))
	for field, raw := range fields {
		idx, err := strconv.Atoi(field)
		if err != nil {
			return domain.QuestionBank{}, err
		}
		indexes = append(indexes, idx)
		byIndex[idx] = raw
	}
	sort.Ints(indexes)

	questions := make([]domain.Question, 0, len(indexes))
	for _, idx := range indexes {
		var q domain.Question
		if err := json.Unmarshal([]byte(byIndex[idx]), &q); err != nil {
			return domain.QuestionBank{}, err
		}
		questions = append(questions, q)
	}
	return domain.QuestionBank{ID: bankID, Questions: questions}, nil
}

func (r *QuestionRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
