//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"dispatch/internal/gateway/kafka/statusevents"
	claim_post "dispatch/internal/handlers/rest/claim_post"
	lease_renew_post "dispatch/internal/handlers/rest/lease_renew_post"
	order_counts_get "dispatch/internal/handlers/rest/order_counts_get"
	release_post "dispatch/internal/handlers/rest/release_post"
	sync_ack_post "dispatch/internal/handlers/rest/sync_ack_post"
	sync_post "dispatch/internal/handlers/rest/sync_post"
	transition_post "dispatch/internal/handlers/rest/transition_post"
	"dispatch/internal/handlers/tasks/queue_purge"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/status_handle"

	orderRepo "dispatch/internal/repository/order"
	outcomeRepo "dispatch/internal/repository/outcome"
	syncRepo "dispatch/internal/repository/syncqueue"
	claimService "dispatch/internal/service/claim"
	eventsService "dispatch/internal/service/events"
	orderService "dispatch/internal/service/order"
	outcomeService "dispatch/internal/service/outcome"
	syncService "dispatch/internal/service/syncqueue"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	PurgeInterval  time.Duration
	QueueRetention time.Duration
)

type Application struct {
	ServiceClaim      ServiceClaim
	ServiceOrder      ServiceOrder
	ServiceSync       ServiceSync
	BackgroundWorkers *background.Worker
}

type ServiceClaim interface {
	claim_post.Service
	release_post.Service
	lease_renew_post.Service
	order_counts_get.Service
}

type ServiceOrder interface {
	transition_post.Service
}

type ServiceSync interface {
	sync_post.Service
	sync_ack_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		providePurgeInterval,
		provideQueueRetention,

		provideOrderRepository,
		provideSyncQueueRepository,
		provideOutcomeRepository,

		provideEventGateway,
		provideStateMachine,
		provideClaimManager,
		provideOutcomeRecorder,
		provideSyncService,

		provideQueuePurgeTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceClaim), new(*claimService.Manager)),
		wire.Bind(new(ServiceOrder), new(*orderService.StateMachine)),
		wire.Bind(new(ServiceSync), new(*syncService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.EventPublisher), new(*statusevents.EventGateway)),
		wire.Bind(new(claimService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(outcomeService.Repository), new(*outcomeRepo.Repository)),
		wire.Bind(new(outcomeService.OrderStateMachine), new(*orderService.StateMachine)),
		wire.Bind(new(syncService.Repository), new(*syncRepo.Repository)),
		wire.Bind(new(syncService.OrderProvider), new(*orderRepo.Repository)),
		wire.Bind(new(syncService.ClaimService), new(*claimService.Manager)),
		wire.Bind(new(syncService.OrderStateMachine), new(*orderService.StateMachine)),
		wire.Bind(new(syncService.OutcomeRecorder), new(*outcomeService.Recorder)),

		wire.Bind(new(outcomeService.TxManager), new(*tx.Manager)),
		wire.Bind(new(syncService.TxManager), new(*tx.Manager)),

		wire.Bind(new(queue_purge.Service), new(*syncService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	EventsService *eventsService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideOrderRepository,

		provideEventGateway,
		provideStateMachine,
		provideStatusHandlerFactory,
		provideEventsService,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.EventPublisher), new(*statusevents.EventGateway)),
		wire.Bind(new(eventsService.HandlerFactory), new(*status_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideSyncQueueRepository(querier *querier.Querier) *syncRepo.Repository {
	return syncRepo.New(querier)
}

func provideOutcomeRepository(querier *querier.Querier) *outcomeRepo.Repository {
	return outcomeRepo.New(querier)
}

func provideEventGateway(producer sarama.SyncProducer, cfg *config.Config) *statusevents.EventGateway {
	return statusevents.New(producer, cfg.Kafka.ProducerTopic)
}

func provideStateMachine(
	repository orderService.Repository,
	publisher orderService.EventPublisher,
	log logger.Logger,
) *orderService.StateMachine {
	return orderService.New(repository, publisher, log)
}

func provideClaimManager(
	repository claimService.Repository,
	cfg *config.Config,
) *claimService.Manager {
	return claimService.New(repository, cfg.Claim.LeaseDuration)
}

func provideOutcomeRecorder(
	repository outcomeService.Repository,
	stateMachine outcomeService.OrderStateMachine,
	txManager outcomeService.TxManager,
) *outcomeService.Recorder {
	return outcomeService.New(repository, stateMachine, txManager)
}

func provideSyncService(
	repository syncService.Repository,
	orders syncService.OrderProvider,
	claims syncService.ClaimService,
	stateMachine syncService.OrderStateMachine,
	outcomes syncService.OutcomeRecorder,
	txManager syncService.TxManager,
	cfg *config.Config,
) *syncService.Service {
	return syncService.New(
		repository,
		orders,
		claims,
		stateMachine,
		outcomes,
		txManager,
		cfg.Sync.MaxBatch,
	)
}

func provideStatusHandlerFactory(stateMachine *orderService.StateMachine) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(stateMachine, eventsService.CommerceActor)
}

func provideEventsService(handlerFactory eventsService.HandlerFactory) *eventsService.Service {
	return eventsService.New(handlerFactory)
}

func providePurgeInterval(cfg *config.Config) PurgeInterval {
	return PurgeInterval(cfg.Tasks.QueuePurgeInterval)
}

func provideQueueRetention(cfg *config.Config) QueueRetention {
	return QueueRetention(cfg.Tasks.QueueRetention)
}

func provideQueuePurgeTask(
	log logger.Logger,
	syncService queue_purge.Service,
	interval PurgeInterval,
	retention QueueRetention,
) *queue_purge.QueuePurge {
	return queue_purge.NewQueuePurge(log, syncService, time.Duration(interval), time.Duration(retention))
}

func provideTaskList(
	queuePurgeTask *queue_purge.QueuePurge,
) []background.Task {
	return []background.Task{
		queuePurgeTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
