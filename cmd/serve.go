package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	createEmployeeHandler "github.com/m04kA/SMC-HolidayService/internal/api/handlers/create_employee"
	createHolidayHandler "github.com/m04kA/SMC-HolidayService/internal/api/handlers/create_holiday"
	deleteHolidayHandler "github.com/m04kA/SMC-HolidayService/internal/api/handlers/delete_holiday"
	getHolidayHandler "github.com/m04kA/SMC-HolidayService/internal/api/handlers/get_holiday"
	listEmployeesHandler "github.com/m04kA/SMC-HolidayService/internal/api/handlers/list_employees"
	listHolidaysHandler "github.com/m04kA/SMC-HolidayService/internal/api/handlers/list_holidays"
	updateHolidayHandler "github.com/m04kA/SMC-HolidayService/internal/api/handlers/update_holiday"
	"github.com/m04kA/SMC-HolidayService/internal/api/middleware"
	employeeRepo "github.com/m04kA/SMC-HolidayService/internal/infra/storage/employee"
	holidayRepo "github.com/m04kA/SMC-HolidayService/internal/infra/storage/holiday"
	"github.com/m04kA/SMC-HolidayService/internal/integrations/events"
	"github.com/m04kA/SMC-HolidayService/internal/scheduling"
	employeesService "github.com/m04kA/SMC-HolidayService/internal/service/employees"
	holidaysService "github.com/m04kA/SMC-HolidayService/internal/service/holidays"
	createHolidayUC "github.com/m04kA/SMC-HolidayService/internal/usecase/create_holiday"
	deleteHolidayUC "github.com/m04kA/SMC-HolidayService/internal/usecase/delete_holiday"
	updateHolidayUC "github.com/m04kA/SMC-HolidayService/internal/usecase/update_holiday"
	"github.com/m04kA/SMC-HolidayService/pkg/txmanager"
)

type eventPublisher interface {
	Publish(ctx context.Context, event events.HolidayEvent) error
	Close() error
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	a, err := bootstrap(ctx, true)
	if err != nil {
		return err
	}
	defer a.close()

	cfg, log := a.cfg, a.log
	log.Info("Starting SMC-HolidayService...")

	// Инициализируем публикацию событий
	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := events.NewPublisher(
			cfg.Kafka.Brokers,
			cfg.Kafka.Topic,
			time.Duration(cfg.Kafka.BatchTimeoutMs)*time.Millisecond,
			log,
		)
		if err != nil {
			return fmt.Errorf("failed to create kafka publisher: %w", err)
		}
		publisher = kafkaPublisher
		log.Info("Kafka publisher initialized (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	// Инициализируем репозитории
	holidayRepository := holidayRepo.NewRepository(a.db)
	employeeRepository := employeeRepo.NewRepository(a.db)
	txMgr := txmanager.NewTransactionManager(a.db)

	timeProvider := &scheduling.RealTimeProvider{}
	validator := scheduling.NewValidator(holidayRepository, timeProvider)

	// Инициализируем сервисы
	holidaySvc := holidaysService.NewService(holidayRepository, log)
	employeeSvc := employeesService.NewService(employeeRepository, log)

	// Инициализируем use cases
	createHolidayUseCase := createHolidayUC.NewUseCase(
		holidayRepository, validator, txMgr, publisher, a.metrics, timeProvider, log,
	)
	updateHolidayUseCase := updateHolidayUC.NewUseCase(
		holidayRepository, validator, txMgr, publisher, a.metrics, timeProvider, log,
	)
	deleteHolidayUseCase := deleteHolidayUC.NewUseCase(
		holidayRepository, validator, txMgr, publisher, a.metrics, timeProvider, log,
	)

	// Инициализируем handlers
	createHoliday := createHolidayHandler.NewHandler(createHolidayUseCase, log)
	updateHoliday := updateHolidayHandler.NewHandler(updateHolidayUseCase, log)
	deleteHoliday := deleteHolidayHandler.NewHandler(deleteHolidayUseCase, log)
	getHoliday := getHolidayHandler.NewHandler(holidaySvc, log)
	listHolidays := listHolidaysHandler.NewHandler(holidaySvc, log)
	createEmployee := createEmployeeHandler.NewHandler(employeeSvc, log)
	listEmployees := listEmployeesHandler.NewHandler(employeeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogging(log))

	if a.metrics != nil {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// --- Отпуска ---
	api.HandleFunc("/holidays", listHolidays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/holidays", createHoliday.Handle).Methods(http.MethodPost)
	api.HandleFunc("/holidays/{holidayId}", getHoliday.Handle).Methods(http.MethodGet)
	api.HandleFunc("/holidays/{holidayId}", updateHoliday.Handle).Methods(http.MethodPut)
	api.HandleFunc("/holidays/{holidayId}", deleteHoliday.Handle).Methods(http.MethodDelete)

	// --- Сотрудники ---
	api.HandleFunc("/employees", listEmployees.Handle).Methods(http.MethodGet)
	api.HandleFunc("/employees", createEmployee.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed to start: %v", err)
		return err
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
