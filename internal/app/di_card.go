package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/allisson/binbot/internal/binlookup"
	cardHTTP "github.com/allisson/binbot/internal/card/http"
	cardService "github.com/allisson/binbot/internal/card/service"
	cardUseCase "github.com/allisson/binbot/internal/card/usecase"
	"github.com/allisson/binbot/internal/database"
	historyRepository "github.com/allisson/binbot/internal/history/repository"
	historyUseCase "github.com/allisson/binbot/internal/history/usecase"
)

// Redis returns the redis client, or nil when REDIS_ADDR is not set.
func (c *Container) Redis() (*redis.Client, error) {
	var err error
	c.redisInit.Do(func() {
		c.redis, err = c.initRedis()
		if err != nil {
			c.setInitError("redis", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("redis"); storedErr != nil {
		return nil, storedErr
	}
	return c.redis, nil
}

// CardGenerator returns the card synthesis engine. CARD_RANDOM_SEED makes it
// reproducible.
func (c *Container) CardGenerator() *cardService.Generator {
	c.cardGeneratorInit.Do(func() {
		c.cardGenerator = c.initCardGenerator()
	})
	return c.cardGenerator
}

// BinResolver returns the BIN metadata resolver chain, cached when redis is
// configured.
func (c *Container) BinResolver() (binlookup.Resolver, error) {
	var err error
	c.binResolverInit.Do(func() {
		c.binResolver, err = c.initBinResolver()
		if err != nil {
			c.setInitError("binResolver", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("binResolver"); storedErr != nil {
		return nil, storedErr
	}
	return c.binResolver, nil
}

// HistoryRepository returns the history repository for the configured driver.
func (c *Container) HistoryRepository() (historyUseCase.HistoryRepository, error) {
	var err error
	c.historyRepoInit.Do(func() {
		c.historyRepo, err = c.initHistoryRepository()
		if err != nil {
			c.setInitError("historyRepo", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("historyRepo"); storedErr != nil {
		return nil, storedErr
	}
	return c.historyRepo, nil
}

// HistoryUseCase returns the history use case.
func (c *Container) HistoryUseCase() (historyUseCase.HistoryUseCase, error) {
	var err error
	c.historyUseCaseInit.Do(func() {
		c.historyUseCase, err = c.initHistoryUseCase()
		if err != nil {
			c.setInitError("historyUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("historyUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.historyUseCase, nil
}

// CardUseCase returns the card use case wrapped with business metrics.
func (c *Container) CardUseCase() (cardUseCase.CardUseCase, error) {
	var err error
	c.cardUseCaseInit.Do(func() {
		c.cardUseCase, err = c.initCardUseCase()
		if err != nil {
			c.setInitError("cardUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardUseCase, nil
}

// OfflineCardUseCase returns a card use case that never touches the network
// or the database. It is not cached.
func (c *Container) OfflineCardUseCase() cardUseCase.CardUseCase {
	return cardUseCase.NewCardUseCase(c.CardGenerator(), nil, nil, c.Logger())
}

// CardHandler returns the card HTTP handler.
func (c *Container) CardHandler() (*cardHTTP.CardHandler, error) {
	var err error
	c.cardHandlerInit.Do(func() {
		c.cardHandler, err = c.initCardHandler()
		if err != nil {
			c.setInitError("cardHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardHandler, nil
}

func (c *Container) initRedis() (*redis.Client, error) {
	if c.config.RedisAddr == "" {
		return nil, nil
	}
	client, err := database.NewRedisClient(context.Background(), database.RedisConfig{
		Addr:     c.config.RedisAddr,
		Password: c.config.RedisPassword,
		DB:       c.config.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func (c *Container) initCardGenerator() *cardService.Generator {
	source := cardService.NewRandomSource()
	if c.config.CardRandomSeed != 0 {
		source = cardService.NewSeededSource(c.config.CardRandomSeed)
	}
	return cardService.NewGenerator(cardService.NewDefaultClassifier(), source, nil)
}

// initBinResolver skips the cache when redis is unreachable.
func (c *Container) initBinResolver() (binlookup.Resolver, error) {
	logger := c.Logger()

	var providers []binlookup.Provider
	if c.config.BinLookupPrimaryURL != "" {
		providers = append(providers, binlookup.NewBinlistProvider(c.config.BinLookupPrimaryURL, c.config.BinLookupTimeout))
	}
	if c.config.BinLookupBackupURL != "" {
		providers = append(providers, binlookup.NewBincheckProvider(c.config.BinLookupBackupURL, c.config.BinLookupTimeout))
	}

	var resolver binlookup.Resolver = binlookup.NewChain(
		providers,
		c.config.BinLookupRetries,
		c.config.BinLookupRetryDelay,
		logger,
	)

	client, err := c.Redis()
	if err != nil {
		logger.Warn("bin metadata cache disabled", slog.Any("error", err))
		return resolver, nil
	}
	if client != nil {
		resolver = binlookup.NewCachedResolver(resolver, client, c.config.RedisBinTTL, logger)
	}

	return resolver, nil
}

func (c *Container) initHistoryRepository() (historyUseCase.HistoryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for history repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return historyRepository.NewMySQLHistoryRepository(db), nil
	case "postgres":
		return historyRepository.NewPostgreSQLHistoryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initHistoryUseCase() (historyUseCase.HistoryUseCase, error) {
	repo, err := c.HistoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get history repository for history use case: %w", err)
	}
	return historyUseCase.NewHistoryUseCase(repo), nil
}

// initCardUseCase runs without history when the database is unreachable.
func (c *Container) initCardUseCase() (cardUseCase.CardUseCase, error) {
	logger := c.Logger()

	resolver, err := c.BinResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to get bin resolver for card use case: %w", err)
	}

	var history cardUseCase.HistoryRecorder
	if historyUC, err := c.HistoryUseCase(); err == nil {
		history = historyUC
	} else {
		logger.Warn("lookup history disabled", slog.Any("error", err))
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
	}

	useCase := cardUseCase.NewCardUseCase(c.CardGenerator(), resolver, history, logger)
	return cardUseCase.NewCardUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initCardHandler() (*cardHTTP.CardHandler, error) {
	useCase, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for card handler: %w", err)
	}
	return cardHTTP.NewCardHandler(useCase, c.config.BatchMaxCount, c.Logger()), nil
}
