// Command socialmedia-go runs the social media REST API: user accounts,
// login, posts, comments and likes over PostgreSQL. It wires the
// configuration, database pool, migrations, services and HTTP router,
// and handles graceful shutdown.
//
// @title Social Media API
// @version 1.0
// @description REST API for a small social media backend: users, posts, comments and likes.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/socialmedia-go/auth"
	"github.com/user/socialmedia-go/comments"
	"github.com/user/socialmedia-go/config"
	"github.com/user/socialmedia-go/db"
	_ "github.com/user/socialmedia-go/docs" // generated Swagger docs
	"github.com/user/socialmedia-go/likes"
	"github.com/user/socialmedia-go/posts"
	"github.com/user/socialmedia-go/users"
	"github.com/user/socialmedia-go/validation"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hasher := auth.NewBcryptHasher()
	tokenService := auth.NewTokenService(*cfg.Auth)
	validate := validation.New()

	authService := auth.NewService(pool, hasher, tokenService)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewUserService(pool, hasher)
	userHandlers := users.NewHandlers(userService, validate)

	postService := posts.NewPostService(posts.NewStore(pool))
	postHandlers := posts.NewHandlers(postService, validate)

	commentService := comments.NewCommentService(comments.NewStore(pool))
	commentHandlers := comments.NewHandlers(commentService, validate)

	likeService := likes.NewLikeService(likes.NewStore(pool))
	likeHandlers := likes.NewHandlers(likeService, validate)

	// The guard resolves token subjects through the user service, so a
	// deleted account invalidates its outstanding tokens.
	guard := auth.JWTMiddleware(tokenService, userService.GetByID)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", handleRoot())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/login", func(r chi.Router) {
		r.Post("/", authHandlers.HandleLogin())
	})

	// Registration and the public profile lookup stay outside the guard.
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandlers.HandleCreateUser())
		r.Get("/{user_id}", userHandlers.HandleGetUser())
	})

	r.Route("/posts", func(r chi.Router) {
		r.Use(guard)
		postHandlers.RegisterRoutes(r)
	})

	r.Route("/comments", func(r chi.Router) {
		r.Use(guard)
		commentHandlers.RegisterRoutes(r)
	})

	r.Route("/likes", func(r chi.Router) {
		r.Use(guard)
		likeHandlers.RegisterRoutes(r)
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// handleRoot godoc
// @Summary Root
// @Description Liveness greeting.
// @Tags Root
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func handleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth.WriteJSON(w, http.StatusOK, map[string]string{"message": "Hi, there!"})
	}
}
