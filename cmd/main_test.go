package main

import (
	"context"
	"customers-service/internal/config"
	"customers-service/internal/event"
	"customers-service/internal/infrastructure/logging"
	"errors"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockJob struct {
	mock.Mock
}

func (m *mockJob) Run(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestInitializeApp(t *testing.T) {
	cfg, log := initializeApp()

	assert.NotNil(t, cfg, "Config should not be nil")
	assert.NotNil(t, log, "Logger should not be nil")
}

func TestStartServer(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			IdleTimeout:  5 * time.Second,
		},
	}
	logger := logging.NewLogger(config.LoggerConfig{})
	router := http.NewServeMux()

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	defer srv.Close()

	assert.NotNil(t, srv, "Server should not be nil")
	assert.NotNil(t, serverErrors, "Server errors channel should not be nil")
	assert.NotNil(t, shutdownChan, "Shutdown channel should not be nil")
}

func TestHandleShutdown(t *testing.T) {
	logger := logging.NewLogger(config.LoggerConfig{})
	cronScheduler := cron.New()
	srv := &http.Server{}
	shutdownChan := make(chan os.Signal, 1)
	serverErrors := make(chan error, 1)

	go func() {
		shutdownChan <- syscall.SIGINT
	}()

	handleShutdown(srv, cronScheduler, shutdownChan, serverErrors, logger)
	assert.True(t, true, "Graceful shutdown should complete without errors")
}

func TestStartBatchJobs(t *testing.T) {
	logger := logging.NewLogger(config.LoggerConfig{})

	t.Run("Defaults When Unconfigured", func(t *testing.T) {
		job := new(mockJob)
		c := startBatchJobs(&config.Config{}, logger, job)
		defer c.Stop()

		entries := c.Entries()
		require.Len(t, entries, 1)
		next := entries[0].Schedule.Next(time.Date(2024, 1, 1, 10, 1, 0, 0, time.Local))
		assert.Equal(t, time.Date(2024, 1, 1, 10, 30, 0, 0, time.Local), next)
		job.AssertNotCalled(t, "Run", mock.Anything)
	})

	t.Run("Invalid Schedule Is Not Registered", func(t *testing.T) {
		job := new(mockJob)
		cfg := &config.Config{Batch: config.BatchConfig{IntegrityCheckSchedule: "not a schedule"}}
		c := startBatchJobs(cfg, logger, job)
		defer c.Stop()

		assert.Empty(t, c.Entries())
	})

	t.Run("Job Runs With Deadline", func(t *testing.T) {
		job := new(mockJob)
		job.On("Run", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		})).Return(errors.New("boom")).Once()
		cfg := &config.Config{Batch: config.BatchConfig{IntegrityCheckTimeout: time.Second}}
		c := startBatchJobs(cfg, logger, job)
		defer c.Stop()

		entries := c.Entries()
		require.Len(t, entries, 1)
		entries[0].Job.Run()
		job.AssertExpectations(t)
	})
}

func TestInitializeEventPublisher_Disabled(t *testing.T) {
	logger := logging.NewLogger(config.LoggerConfig{})

	publisher, closeFn := initializeEventPublisher(&config.Config{}, logger)
	defer closeFn()

	assert.IsType(t, &event.NoopPublisher{}, publisher)
}

func TestEnsureIndexes_FailureIsNotFatal(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()
	logger := logging.NewLogger(config.LoggerConfig{})

	mockDB.ExpectExec("CREATE UNIQUE INDEX").WillReturnError(errors.New("duplicate key value violates unique constraint"))

	ensureIndexes(&config.Config{Bootstrap: config.BootstrapConfig{IndexTimeout: time.Second}}, mockDB, logger)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
