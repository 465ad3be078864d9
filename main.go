package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"odyssweb/internal/apiclient"
	intconfig "odyssweb/internal/config"
	router "odyssweb/internal/http"
	"odyssweb/internal/http/handlers"
	"odyssweb/internal/search"
	"odyssweb/internal/services"
	"odyssweb/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	store, err := session.NewStore(env.StatePath)
	if err != nil {
		log.Fatalf("failed to open session store at %s: %v", env.StatePath, err)
	}

	client := apiclient.New(store, apiclient.Options{
		BaseURL:       env.APIBaseURL,
		Timeout:       env.RequestTimeout,
		RefreshWindow: env.RefreshWindow,
	})

	bookings := services.BookingsService{API: client}
	payments := services.PaymentsService{API: client}

	h := &handlers.Handlers{
		Env:           env,
		Session:       store,
		Auth:          services.AuthService{API: client, Session: store},
		Users:         services.UsersService{API: client},
		Trips:         services.TripsService{API: client},
		Circles:       services.CirclesService{API: client},
		Bookings:      bookings,
		Payments:      payments,
		Notifications: services.NotificationsService{API: client, BaseURL: env.SiteBaseURL},
		Tickets:       services.TicketService{Bookings: bookings, Payments: payments},
		Companies:     services.CompanyService{API: client},
		SearchCache:   &search.ResultCache{},
	}

	r := router.NewRouter(h)

	var scheduler *cron.Cron
	if env.KeepAliveEnabled {
		keepAlive := session.KeepAlive{Store: store, Refresher: client}
		scheduler = cron.New()
		if _, err := scheduler.AddFunc(env.KeepAliveSpec, func() {
			keepAlive.Sweep(context.Background())
		}); err != nil {
			log.Fatalf("invalid keepalive spec %q: %v", env.KeepAliveSpec, err)
		}
		scheduler.Start()
	}

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Odyss web client listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
