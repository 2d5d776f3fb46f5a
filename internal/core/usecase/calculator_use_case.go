package usecase

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Nzyazin/fincalc/internal/core/logger"
	"github.com/Nzyazin/fincalc/internal/core/metrics"
	"github.com/Nzyazin/fincalc/internal/core/models"
	"github.com/Nzyazin/fincalc/internal/core/repository"
)

const cacheKeyPrefix = "fincalc"

// CalculatorUsecase wraps the pure calculations with caching, metrics and
// logging. A nil cache disables caching.
type CalculatorUsecase struct {
	cache    repository.ResultCache
	cacheTTL time.Duration
	metrics  *metrics.Calculations
	log      logger.Logger
	now      func() time.Time
}

func NewCalculatorUsecase(cache repository.ResultCache, cacheTTL time.Duration, m *metrics.Calculations, log logger.Logger) *CalculatorUsecase {
	return &CalculatorUsecase{
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  m,
		log:      log,
		now:      time.Now,
	}
}

// Result is a calculation response together with its JSON encoding.
type Result[Resp any] struct {
	Response Resp
	Payload  []byte
	Cached   bool
}

// Execute runs calc for req, or serves a previously encoded result from the
// cache. Results holding NaN or infinities cannot be encoded and come back
// with ErrNonFiniteResult alongside the raw response.
func Execute[Req any, Resp any](ctx context.Context, uc *CalculatorUsecase, scenario models.Scenario, req Req, calc func(Req) Resp) (Result[Resp], error) {
	start := uc.now()

	key, err := cacheKey(scenario, req)
	if err != nil {
		return Result[Resp]{}, fmt.Errorf("build cache key: %w", err)
	}

	if cached, ok := lookup[Resp](ctx, uc, scenario, key); ok {
		uc.observe(scenario, metrics.OutcomeCached, start)
		return cached, nil
	}

	resp := calc(req)

	payload, err := encode(resp)
	if err != nil {
		uc.observe(scenario, metrics.OutcomeNonFinite, start)
		uc.log.Warn("Calculation result is not encodable",
			logger.StringField("scenario", string(scenario)),
			logger.ErrorField("error", err))
		return Result[Resp]{Response: resp}, fmt.Errorf("%w: %v", ErrNonFiniteResult, err)
	}

	uc.store(ctx, scenario, key, payload)
	uc.observe(scenario, metrics.OutcomeComputed, start)

	uc.log.Debug("Calculation completed",
		logger.StringField("scenario", string(scenario)),
		logger.IntField("payload_bytes", len(payload)))

	return Result[Resp]{Response: resp, Payload: payload}, nil
}

func lookup[Resp any](ctx context.Context, uc *CalculatorUsecase, scenario models.Scenario, key string) (Result[Resp], bool) {
	if uc.cache == nil {
		return Result[Resp]{}, false
	}

	payload, err := uc.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.log.Warn("Cache lookup failed",
				logger.StringField("scenario", string(scenario)),
				logger.ErrorField("error", err))
		}
		return Result[Resp]{}, false
	}

	var resp Resp
	if err := json.Unmarshal(payload, &resp); err != nil {
		uc.log.Warn("Discarding undecodable cache entry",
			logger.StringField("key", key),
			logger.ErrorField("error", err))
		return Result[Resp]{}, false
	}

	return Result[Resp]{Response: resp, Payload: payload, Cached: true}, true
}

func (uc *CalculatorUsecase) store(ctx context.Context, scenario models.Scenario, key string, payload []byte) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(ctx, key, payload, uc.cacheTTL); err != nil {
		uc.log.Warn("Cache store failed",
			logger.StringField("scenario", string(scenario)),
			logger.ErrorField("error", err))
	}
}

func (uc *CalculatorUsecase) observe(scenario models.Scenario, outcome metrics.Outcome, start time.Time) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.Observe(string(scenario), outcome, uc.now().Sub(start))
}

// encode keeps chart markup readable: no HTML escaping, no trailing newline.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// cacheKey is fincalc:<scenario>:<sha256 of the request JSON>. Field order in
// the encoding follows the struct, so equal requests hash equally.
func cacheKey(scenario models.Scenario, req any) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return cacheKeyPrefix + ":" + string(scenario) + ":" + hex.EncodeToString(sum[:]), nil
}
