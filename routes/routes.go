package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-manager/controllers"
	"hotel-manager/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(dc *controllers.DashboardController, ac *controllers.AccountController) *gin.Engine {
	r := gin.Default()

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.Logger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	account := r.Group("/Account")
	{
		account.POST("/Login", ac.Login)
		account.POST("/Register", ac.Register)
	}

	dashboard := r.Group("/Dashboard", middleware.Authenticate())
	{
		dashboard.GET("", dc.Index)
		dashboard.GET("/Customer", dc.Customer)
		dashboard.GET("/AvailableRooms", dc.AvailableRooms)
		dashboard.GET("/MyBookings", dc.MyBookings)

		dashboard.GET("/Admin", dc.Admin)
		dashboard.GET("/ManageCustomers", dc.ManageCustomers)
		dashboard.GET("/Rooms", dc.Rooms)
		dashboard.GET("/Hotels", dc.Hotels)
		dashboard.POST("/CreateHotel", dc.CreateHotel)
		dashboard.GET("/CreateRoom", dc.CreateRoomForm)
		dashboard.POST("/CreateRoom", dc.CreateRoom)
		dashboard.GET("/EditRoom/:id", dc.EditRoomForm)
		dashboard.POST("/EditRoom/:id", dc.EditRoom)
		dashboard.POST("/DeleteRoom/:id", dc.DeleteRoom)
		dashboard.POST("/CreateCustomer", dc.CreateCustomer)
		dashboard.POST("/DeleteCustomer/:id", dc.DeleteCustomer)
	}

	return r
}
