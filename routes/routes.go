package routes

import (
	"net/http"

	"embervale/auth"
	"embervale/barter"
	"embervale/filemgr"
	"embervale/guide"
	"embervale/leaderboard"
	"embervale/medicines"
	"embervale/middleware"
	"embervale/plants"
	"embervale/ratelim"
	"embervale/tradefeed"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, hub *tradefeed.Hub) {
	AddAuthRoutes(router, rateLimiter)
	AddPlantRoutes(router, rateLimiter)
	AddMedicineRoutes(router, rateLimiter)
	AddBarterRoutes(router, rateLimiter, hub)
	AddGuideRoutes(router, rateLimiter)
	AddLeaderboardRoutes(router, rateLimiter)
	AddUploadRoutes(router, rateLimiter)
	AddTradeFeedRoutes(router, hub)
	AddStaticRoutes(router)
}

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rateLimiter.Limit(auth.Register))
	router.POST("/api/auth/login", rateLimiter.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rateLimiter.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddPlantRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/plants", rateLimiter.Limit(middleware.OptionalAuth(plants.GetPlants)))
	router.GET("/api/plants/catalogue", rateLimiter.Limit(plants.GetPlantCatalogue))
	router.GET("/api/plants/search", rateLimiter.Limit(plants.SearchPlants))
	router.GET("/api/plants/crop/:id", rateLimiter.Limit(plants.GetCropDetail))
	router.POST("/api/plants", middleware.Authenticate(plants.CreatePlant))
	router.GET("/api/plant/:id", rateLimiter.Limit(plants.GetPlant))
}

func AddMedicineRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	h := medicines.NewHandler(medicines.NewMongoStore())

	router.GET("/api/medicines", rateLimiter.Limit(h.GetMedicines))
	router.POST("/api/medicines", middleware.Authenticate(h.CreateMedicine))
	router.GET("/api/medicine/:id", rateLimiter.Limit(h.GetMedicine))
	router.GET("/api/medicine/:id/print", rateLimiter.Limit(h.PrintRecipeCard))
}

func AddBarterRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, hub *tradefeed.Hub) {
	h := barter.NewHandler(barter.NewMongoListingStore(), hub)

	router.GET("/api/barter/items", rateLimiter.Limit(middleware.OptionalAuth(h.GetBarterItems)))
	router.POST("/api/barter/items", middleware.Authenticate(h.CreateBarterItem))
	router.GET("/api/barter/item/:id", rateLimiter.Limit(h.GetBarterItem))
	router.PUT("/api/barter/item/:id", middleware.Authenticate(h.UpdateBarterItem))
	router.DELETE("/api/barter/item/:id", middleware.Authenticate(h.DeleteBarterItem))
	router.GET("/api/barter/item/:id/qr", rateLimiter.Limit(h.GetListingQR))
	router.POST("/api/barter/item/:id/proposals", middleware.Authenticate(h.ProposeTrade))
	router.GET("/api/barter/proposals", middleware.Authenticate(h.GetTradeProposals))
}

func AddGuideRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	h := guide.NewHandler()

	router.POST("/api/guide", rateLimiter.Limit(h.AskGuide))
	router.POST("/api/analyze", rateLimiter.Limit(h.AnalyzePlant))
}

func AddLeaderboardRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/leaderboard", rateLimiter.Limit(middleware.OptionalAuth(leaderboard.GetLeaderboard)))
}

func AddUploadRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/uploads/:entity", rateLimiter.Limit(middleware.Authenticate(filemgr.UploadImage)))
}

func AddTradeFeedRoutes(router *httprouter.Router, hub *tradefeed.Hub) {
	router.GET("/ws/barter", middleware.OptionalAuth(tradefeed.WebSocketHandler(hub)))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
	router.ServeFiles("/images/*filepath", http.Dir("static/images"))
}
