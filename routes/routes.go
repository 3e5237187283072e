package routes

import (
	"time"

	"github.com/filiperamosmorais-source/MealOps/controllers"
	"github.com/filiperamosmorais-source/MealOps/middlewares"
	"github.com/filiperamosmorais-source/MealOps/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	userCtl := controllers.NewUserController(services.NewUserService(db))
	ingredientCtl := controllers.NewIngredientController(services.NewIngredientService(db))
	recipeCtl := controllers.NewRecipeController(services.NewRecipeService(db))
	planCtl := controllers.NewMealPlanController(services.NewMealPlanService(db))

	// Public auth routes, rate-limited per client IP
	limiter := middlewares.NewRateLimiter(rate.Every(time.Second), 10)
	auth := r.Group("/auth")
	auth.Use(limiter.Middleware())
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtl.GetProfile)
		user.PUT("/profile", userCtl.UpdateProfile)
	}

	ingredients := r.Group("/ingredients")
	ingredients.Use(middlewares.AuthMiddleware())
	{
		ingredients.GET("", ingredientCtl.List)
		ingredients.GET("/:id", ingredientCtl.Get)

		// Catalog writes are admin-only
		admin := ingredients.Group("")
		admin.Use(middlewares.AdminMiddleware())
		{
			admin.POST("", ingredientCtl.Create)
			admin.PUT("/:id", ingredientCtl.Update)
			admin.DELETE("/:id", ingredientCtl.Delete)
		}
	}

	recipes := r.Group("/recipes")
	recipes.Use(middlewares.AuthMiddleware())
	{
		recipes.POST("", recipeCtl.Create)
		recipes.GET("", recipeCtl.List)
		recipes.GET("/:id", recipeCtl.Get)
		recipes.DELETE("/:id", recipeCtl.Delete)
	}

	plans := r.Group("/meal-plans")
	plans.Use(middlewares.AuthMiddleware())
	{
		plans.GET("", planCtl.GetWeek)
		plans.GET("/summary", planCtl.Summary)
		plans.PUT("", planCtl.SaveWeek)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		admin.GET("/users", userCtl.ListUsers)
		admin.PUT("/users/:id/role", userCtl.SetRole)
	}

	return r
}
