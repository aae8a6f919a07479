package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reign-ny/membership-approval/internal/app"
	"github.com/reign-ny/membership-approval/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Сервис завершился с ошибкой: %v", err)
		os.Exit(1)
	}
	fmt.Println("Сервер остановлен")
}

func run() error {
	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("не удалось создать приложение: %w", err)
	}

	// Инициализируем хранилище и роутинг
	if err := application.Initialize(context.Background()); err != nil {
		return fmt.Errorf("не удалось инициализировать приложение: %w", err)
	}

	// Настраиваем graceful shutdown для корректного завершения
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- application.Run()
	}()

	fmt.Printf("Сервер запущен на порту %s\n", cfg.Server.Port)

	select {
	case err := <-serverErr:
		return fmt.Errorf("ошибка сервера: %w", err)
	case <-sigChan:
		fmt.Println("\nОстановка сервера...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return application.Shutdown(shutdownCtx)
}
