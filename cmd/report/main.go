package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"store-service/config"
	"store-service/internal/database"
	"store-service/internal/logger"
	"store-service/internal/models"
	"store-service/internal/repository"
	"store-service/internal/service"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
)

// Консольный отчёт панели администратора: заказы и динамика прибыли.
func main() {
	statusFilter := flag.String("status", "", "показывать только заказы с этим статусом")
	cumulative := flag.Bool("cumulative", false, "накопительный итог вместо значений за день")
	flag.Parse()

	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)
	store := service.NewStore(repos, log, service.Options{})
	defer store.Close()

	if err := store.RefreshAll(context.Background()); err != nil {
		log.Fatal("Не удалось загрузить снимки таблиц", zap.Error(err))
	}

	var statuses []models.OrderStatus
	if *statusFilter != "" {
		st, err := models.ParseOrderStatus(*statusFilter)
		if err != nil {
			log.Fatal("Неизвестный статус заказа", zap.String("status", *statusFilter))
		}
		statuses = append(statuses, st)
	}

	orders := tablewriter.NewTable(os.Stdout)
	orders.Header("Order", "Date", "Customer", "Address", "Product", "Qty", "Status")
	for _, e := range store.OrderEntries(statuses...) {
		orders.Append(
			fmt.Sprintf("%d", e.OrderID),
			e.Date.Format("2006-01-02"),
			e.Customer.FirstName+" "+e.Customer.LastName,
			e.Customer.Address,
			e.Product.Name,
			fmt.Sprintf("%.0f", e.Quantity),
			string(e.Status),
		)
	}
	if err := orders.Render(); err != nil {
		log.Fatal("Не удалось вывести таблицу заказов", zap.Error(err))
	}

	fmt.Println()

	profit := tablewriter.NewTable(os.Stdout)
	profit.Header("Date", "Income", "Outlay", "Profit")
	for _, pt := range store.ProfitSeries(*cumulative) {
		profit.Append(
			pt.Date.Format("2006-01-02"),
			fmt.Sprintf("%.2f", pt.Income),
			fmt.Sprintf("%.2f", pt.Outlay),
			fmt.Sprintf("%.2f", pt.Profit),
		)
	}
	if err := profit.Render(); err != nil {
		log.Fatal("Не удалось вывести таблицу прибыли", zap.Error(err))
	}
}
