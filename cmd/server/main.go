package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"parcel-delivery-service/internal/config"
	"parcel-delivery-service/internal/controller"
	"parcel-delivery-service/internal/middleware"
	"parcel-delivery-service/internal/rabbit"
	"parcel-delivery-service/internal/repository"
	"parcel-delivery-service/internal/service"
)

func main() {
	cfg := config.Load()

	// Conexión a MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.MongoDBName)

	// Conexión a RabbitMQ (fan-out de notificaciones)
	conn, err := amqp091.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("Error conectando a RabbitMQ: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Error creando canal en RabbitMQ: %v", err)
	}
	notifier, err := rabbit.NewPublisher(ch)
	if err != nil {
		log.Fatalf("Error declarando exchange de notificaciones: %v", err)
	}

	// Redis es opcional: sin REDIS_ADDR los lookups de rol van a la base
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Error conectando a Redis: %v", err)
		}
	}
	roleCache := middleware.NewRoleCache(redisClient, 5*time.Minute)

	// Repositorios
	userRepo := repository.NewMongoUserRepository(db)
	parcelRepo := repository.NewMongoParcelRepository(db)
	riderRepo := repository.NewMongoRiderRepository(db)
	trackingRepo := repository.NewMongoTrackingRepository(db)
	paymentRepo := repository.NewMongoPaymentRepository(db)
	notificationRepo := repository.NewMongoNotificationRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)
	advertisementRepo := repository.NewMongoAdvertisementRepository(db)
	watchlistRepo := repository.NewMongoWatchlistRepository(db)
	txRunner := repository.NewMongoTxRunner(client)

	// Servicios
	authService := service.NewAuthService(cfg.AuthServiceURL)
	userService := service.NewUserService(userRepo, roleCache)
	parcelService := service.NewParcelService(parcelRepo, riderRepo, trackingRepo, txRunner, notifier)
	riderService := service.NewRiderService(riderRepo, parcelRepo, userRepo, txRunner, roleCache)
	trackingService := service.NewTrackingService(trackingRepo)
	gateway := service.NewPaymentGateway(cfg.PaymentGatewayURL, cfg.PaymentSecretKey)
	paymentService := service.NewPaymentService(paymentRepo, parcelRepo, gateway, txRunner, notifier)
	notificationService := service.NewNotificationService(notificationRepo, notifier)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)
	advertisementService := service.NewAdvertisementService(advertisementRepo)
	watchlistService := service.NewWatchlistService(watchlistRepo)
	mailService := service.NewMailService(cfg.MailRelayURL, cfg.MailRelayKey)

	// Handlers
	users := controller.NewUserController(userService)
	parcels := controller.NewParcelController(parcelService)
	riders := controller.NewRiderController(riderService)
	tracking := controller.NewTrackingController(trackingService)
	payments := controller.NewPaymentController(paymentService)
	notifications := controller.NewNotificationController(notificationService)
	products := controller.NewProductController(productService)
	orders := controller.NewOrderController(orderService)
	advertisements := controller.NewAdvertisementController(advertisementService)
	watchlist := controller.NewWatchlistController(watchlistService)
	contact := controller.NewContactController(mailService)

	// Router
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Rutas públicas
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Parcel Delivery Server is Running")
	})
	r.POST("/users", users.Register)
	r.GET("/users/:email/role", users.GetRole)
	r.GET("/products", products.PublicList)
	r.GET("/products/:id", products.Get)
	r.GET("/api/products/:id/reviews", products.Reviews)
	r.GET("/tracking/:trackingId", tracking.History)
	r.GET("/advertisements", advertisements.PublicList)
	r.POST("/contact", contact.Send)

	// Rutas protegidas (token + tabla de políticas de roles)
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(authService))
	auth.Use(middleware.Authorize(userService, roleCache))

	auth.GET("/users", users.Search)
	auth.PATCH("/users/:id/role", users.ChangeRole)

	auth.GET("/parcels", parcels.List)
	auth.POST("/parcels", parcels.Create)
	auth.GET("/parcels/delivery/status-count", parcels.StatusCount)
	auth.GET("/parcels/:id", parcels.Get)
	auth.DELETE("/parcels/:id", parcels.Delete)
	auth.PATCH("/parcels/:id/status", parcels.UpdateStatus)
	auth.PATCH("/parcels/:id/assign-rider", parcels.AssignRider)
	auth.PATCH("/parcels/:id", parcels.Patch)

	auth.POST("/riders", riders.Apply)
	auth.GET("/riders/pending", riders.Pending)
	auth.GET("/riders/available", riders.Available)
	auth.GET("/riders/active", riders.Active)
	auth.GET("/riders/parcels", riders.MyParcels)
	auth.GET("/riders/completed-parcels", riders.CompletedParcels)
	auth.PATCH("/riders/cashout/:parcelId", riders.CashOut)
	auth.PATCH("/riders/:id", riders.AdminUpdate)

	auth.POST("/tracking", tracking.Append)

	auth.POST("/create-payment-intent", payments.CreateIntent)
	auth.GET("/payments", payments.List)
	auth.POST("/payments", payments.Record)

	auth.POST("/vendor/products", products.VendorCreate)
	auth.GET("/vendor/products", products.VendorList)
	auth.PATCH("/vendor/products/:id", products.VendorUpdate)
	auth.DELETE("/vendor/products/:id", products.VendorDelete)
	auth.GET("/admin/products", products.AdminList)
	auth.PATCH("/admin/products/:id/status", products.Moderate)
	auth.POST("/api/products/:id/reviews", products.AddReview)

	auth.POST("/orders", orders.Create)
	auth.GET("/orders", orders.MyOrders)
	auth.GET("/admin/orders", orders.AdminList)
	auth.PATCH("/orders/:id/status", orders.UpdateStatus)
	auth.PATCH("/orders/:id/accept", orders.Accept)
	auth.DELETE("/orders/:id", orders.Delete)

	auth.POST("/notifications", notifications.Create)
	auth.GET("/notifications", notifications.List)
	auth.PATCH("/notifications/:id/read", notifications.MarkRead)

	auth.POST("/advertisements", advertisements.Create)
	auth.GET("/admin/advertisements", advertisements.AdminList)
	auth.PATCH("/admin/advertisements/:id/status", advertisements.Moderate)
	auth.DELETE("/admin/advertisements/:id", advertisements.Delete)

	auth.POST("/watchlist", watchlist.Add)
	auth.GET("/watchlist", watchlist.List)
	auth.DELETE("/watchlist/:id", watchlist.Remove)

	// Ejecutar servidor
	log.Printf("Parcel Delivery Service ejecutándose en puerto %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
