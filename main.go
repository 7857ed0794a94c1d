package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/configs"
	"fooddelivery/events"
	"fooddelivery/middlewares"
	"fooddelivery/payment"
	"fooddelivery/routes"
	"fooddelivery/services"
	"fooddelivery/utils"
	"fooddelivery/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	store, err := configs.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open store failed: %v", err)
	}
	admin, err := configs.SeedAdmin(cfg)
	if err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Order events: vendor websocket feed, plus RabbitMQ when configured
	feed := ws.NewOrderFeed()
	go feed.Run(ctx)
	publishers := events.Fanout{feed}
	var rabbit *events.RabbitPublisher
	if cfg.AMQPURL != "" {
		rabbit, err = events.DialRabbit(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("connect rabbitmq failed: %v", err)
		}
		publishers = append(publishers, rabbit)
	}

	var gateway payment.Gateway
	if cfg.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeCurrency)
	} else {
		log.Println("STRIPE_SECRET_KEY not set, card payments are recorded without a gateway")
	}

	repos := store.Repos
	creds := services.Credentials{Secret: cfg.JWTSecret, TTL: cfg.JWTTTL}
	delivery := services.NewDeliveryService(repos, creds, publishers)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowOrigins))
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Timeout(cfg.DBTimeout))

	routes.RegisterRoutes(r, routes.Deps{
		Config:    cfg,
		Admin:     services.NewAdminService(repos, admin, creds),
		Vendors:   services.NewVendorService(repos, creds, publishers),
		Customers: services.NewCustomerService(repos, creds, utils.LogOTPSender{}),
		Cart:      services.NewCartService(repos),
		Orders:    services.NewOrderService(repos, delivery, publishers),
		Payments:  services.NewPaymentService(repos, gateway),
		Delivery:  delivery,
		Shopping:  services.NewShoppingService(repos),
		Feed:      feed,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("server running at :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	cancel()
	if rabbit != nil {
		if err := rabbit.Close(); err != nil {
			log.Printf("close rabbitmq: %v", err)
		}
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Printf("close store: %v", err)
	}
}
