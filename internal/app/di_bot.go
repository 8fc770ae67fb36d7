package app

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"github.com/allisson/binbot/internal/bot"
	botHTTP "github.com/allisson/binbot/internal/bot/http"
	"github.com/allisson/binbot/internal/ratelimit"
	userRepository "github.com/allisson/binbot/internal/user/repository"
	userUseCase "github.com/allisson/binbot/internal/user/usecase"
)

// UserRepository returns the chat user repository for the configured driver.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	var err error
	c.userRepoInit.Do(func() {
		c.userRepo, err = c.initUserRepository()
		if err != nil {
			c.setInitError("userRepo", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("userRepo"); storedErr != nil {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// UserUseCase returns the chat user registry.
func (c *Container) UserUseCase() (userUseCase.UseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.setInitError("userUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("userUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// PrivateLimiter returns the per-user cooldown for private chats.
func (c *Container) PrivateLimiter() *ratelimit.Limiter {
	c.privateLimiterInit.Do(func() {
		c.privateLimiter = ratelimit.NewCooldown(c.config.BotPrivateRateLimit)
	})
	return c.privateLimiter
}

// GroupLimiter returns the per-chat cooldown for group chats.
func (c *Container) GroupLimiter() *ratelimit.Limiter {
	c.groupLimiterInit.Do(func() {
		c.groupLimiter = ratelimit.NewCooldown(c.config.BotGroupRateLimit)
	})
	return c.groupLimiter
}

// IPLimiter returns the per-IP limiter for the /v1 API, or nil when rate
// limiting is disabled.
func (c *Container) IPLimiter() *ratelimit.Limiter {
	c.ipLimiterInit.Do(func() {
		if c.config.RateLimitEnabled {
			c.ipLimiter = ratelimit.New(rate.Limit(c.config.RateLimitRequestsPerSec), c.config.RateLimitBurst)
		}
	})
	return c.ipLimiter
}

// TelegramAPI returns the Telegram Bot API client. It calls getMe on creation.
func (c *Container) TelegramAPI() (*tgbotapi.BotAPI, error) {
	var err error
	c.telegramAPIInit.Do(func() {
		c.telegramAPI, err = c.initTelegramAPI()
		if err != nil {
			c.setInitError("telegramAPI", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("telegramAPI"); storedErr != nil {
		return nil, storedErr
	}
	return c.telegramAPI, nil
}

// Dispatcher returns the transport-agnostic bot command dispatcher.
func (c *Container) Dispatcher() (*bot.Dispatcher, error) {
	var err error
	c.dispatcherInit.Do(func() {
		c.dispatcher, err = c.initDispatcher()
		if err != nil {
			c.setInitError("dispatcher", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("dispatcher"); storedErr != nil {
		return nil, storedErr
	}
	return c.dispatcher, nil
}

// TelegramRunner returns the long-polling runner, or nil when
// TELEGRAM_BOT_TOKEN is not set.
func (c *Container) TelegramRunner() (*bot.TelegramRunner, error) {
	var err error
	c.telegramRunnerInit.Do(func() {
		c.telegramRunner, err = c.initTelegramRunner()
		if err != nil {
			c.setInitError("telegramRunner", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("telegramRunner"); storedErr != nil {
		return nil, storedErr
	}
	return c.telegramRunner, nil
}

// WebhookHandler returns the bot webhook HTTP handler.
func (c *Container) WebhookHandler() (*botHTTP.WebhookHandler, error) {
	var err error
	c.webhookHandlerInit.Do(func() {
		var dispatcher *bot.Dispatcher
		dispatcher, err = c.Dispatcher()
		if err != nil {
			err = fmt.Errorf("failed to get dispatcher for webhook handler: %w", err)
			c.setInitError("webhookHandler", err)
			return
		}
		c.webhookHandler = botHTTP.NewWebhookHandler(dispatcher, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("webhookHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.webhookHandler, nil
}

func (c *Container) initUserRepository() (userUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initUserUseCase() (userUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	return userUseCase.NewUserUseCase(txManager, userRepo), nil
}

func (c *Container) initTelegramAPI() (*tgbotapi.BotAPI, error) {
	if !c.config.TelegramEnabled() {
		return nil, nil
	}
	api, err := bot.NewTelegramAPI(c.config.TelegramBotToken, c.config.TelegramPollTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}
	return api, nil
}

func (c *Container) initDispatcher() (*bot.Dispatcher, error) {
	cards, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for dispatcher: %w", err)
	}

	notes, err := c.NoteUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get note use case for dispatcher: %w", err)
	}

	users, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for dispatcher: %w", err)
	}

	api, err := c.TelegramAPI()
	if err != nil {
		return nil, fmt.Errorf("failed to get telegram client for dispatcher: %w", err)
	}

	var membership bot.MembershipChecker
	if api != nil {
		membership = bot.NewTelegramMembership(api)
	}

	return bot.NewDispatcher(
		bot.Config{
			OwnerID:         c.config.BotOwnerID,
			BatchSize:       c.config.BotBatchSize,
			PrivateCooldown: c.config.BotPrivateRateLimit,
			GroupCooldown:   c.config.BotGroupRateLimit,
		},
		cards,
		notes,
		users,
		membership,
		c.PrivateLimiter(),
		c.GroupLimiter(),
		c.Logger(),
	), nil
}

func (c *Container) initTelegramRunner() (*bot.TelegramRunner, error) {
	api, err := c.TelegramAPI()
	if err != nil {
		return nil, fmt.Errorf("failed to get telegram client for runner: %w", err)
	}
	if api == nil {
		return nil, nil
	}

	dispatcher, err := c.Dispatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to get dispatcher for runner: %w", err)
	}

	return bot.NewTelegramRunner(api, api.Self.ID, dispatcher, c.config.TelegramPollTimeout, c.Logger()), nil
}
