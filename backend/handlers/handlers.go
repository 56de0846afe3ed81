package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pisoplay/tycoon/backend/models"
	"github.com/pisoplay/tycoon/backend/utils"
	"github.com/pisoplay/tycoon/tycoon"
	gamemodels "github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/pisoplay/tycoon/tycoon/economy/property"
	"github.com/pisoplay/tycoon/tycoon/sim"
)

// WebApp exposes the game engine over HTTP. It is a thin layer: every
// invariant lives in the engines, handlers only parse and map errors.
type WebApp struct {
	App *tycoon.App
	Sim *sim.Simulator
}

func NewWebApp(app *tycoon.App) *WebApp {
	return &WebApp{
		App: app,
		Sim: sim.NewSimulator(),
	}
}

// RegisterRoutes mounts all API routes on the Fiber app.
func (w *WebApp) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/health", w.HealthCheck)

	characters := api.Group("/characters")
	characters.Post("/", w.CreateCharacter)
	characters.Get("/:id", w.GetCharacter)
	characters.Get("/:id/balance", w.GetCharacterBalance)
	characters.Get("/:id/wealth", w.GetCharacterWealth)
	characters.Get("/:id/properties", w.GetCharacterProperties)
	characters.Get("/:id/inventory", w.GetCharacterInventory)
	characters.Post("/:id/collect-income", w.CollectIncome)
	characters.Post("/:id/work", w.CompleteWorkSession)

	users := api.Group("/users")
	users.Get("/:userID/characters", w.ListUserCharacters)
	users.Get("/:userID/cities", w.ListUserCities)

	cities := api.Group("/cities")
	cities.Get("/:id", w.GetCity)
	cities.Post("/:id/advance", w.AdvanceCity)
	cities.Post("/:id/zones", w.AddZone)
	cities.Post("/:id/roads", w.BuildRoads)
	cities.Put("/:id/tax-rate", w.SetTaxRate)

	properties := api.Group("/properties")
	properties.Get("/suggestions", w.PropertySuggestions)
	properties.Post("/", w.PurchaseProperty)
	properties.Post("/:id/upgrade", w.UpgradeProperty)
	properties.Post("/:id/workers", w.HireWorker)
	properties.Post("/:id/sell", w.SellProperty)

	market := api.Group("/market")
	market.Get("/listings", w.ListListings)
	market.Get("/listings/trending", w.TrendingListings)
	market.Post("/listings", w.CreateListing)
	market.Delete("/listings/:id", w.CancelListing)
	market.Post("/listings/:id/purchase", w.PurchaseListing)
	market.Get("/stats", w.MarketStats)
	market.Get("/history", w.PriceHistory)
	market.Post("/offers", w.MakeOffer)
	market.Post("/offers/:id/accept", w.AcceptOffer)
	market.Post("/offers/:id/reject", w.RejectOffer)
	market.Post("/offers/:id/cancel", w.CancelOffer)
}

// HealthCheck reports process and database health.
func (w *WebApp) HealthCheck(c *fiber.Ctx) error {
	if err := w.App.DB.Ping(c.Context()); err != nil {
		return utils.SendError(c, fiber.StatusServiceUnavailable, "DB_UNAVAILABLE",
			"database unreachable", nil)
	}
	return utils.SendSuccess(c, fiber.Map{
		"version":   w.App.Version,
		"processes": w.App.ProcessManager.GetProcessCount(),
	}, "ok")
}

func (w *WebApp) CreateCharacter(c *fiber.Ctx) error {
	var req models.CreateCharacterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "invalid request body", nil)
	}
	if req.UserID == "" || req.Name == "" || req.HomeCity == "" {
		return utils.SendBadRequest(c, "user_id, name and home_city are required", nil)
	}

	character, err := w.App.CreateCharacter(c.Context(), req.UserID, req.Name, req.HomeCity)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendCreated(c, character, "character created")
}

func (w *WebApp) GetCharacter(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid character id", nil)
	}

	character, err := w.App.CharacterRepository.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, character, "")
}

func (w *WebApp) GetCharacterBalance(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid character id", nil)
	}

	balance, err := w.App.CharacterRepository.GetBalance(c.Context(), id)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"character_id": id, "balance": balance}, "")
}

func (w *WebApp) GetCharacterWealth(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid character id", nil)
	}

	wealth, err := w.App.PropertyEngine.CharacterWealth(c.Context(), id)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, wealth, "")
}

func (w *WebApp) GetCharacterProperties(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid character id", nil)
	}

	properties, err := w.App.PropertyEngine.CharacterProperties(c.Context(), id)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, properties, "")
}

func (w *WebApp) GetCharacterInventory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid character id", nil)
	}

	entries, err := w.App.InventoryRepository.GetByCharacter(c.Context(), id)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, entries, "")
}

// CollectIncome runs a daily income collection for one character. A
// repeat call on the same day returns 200 with collected=false.
func (w *WebApp) CollectIncome(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid character id", nil)
	}

	now := time.Now()
	result, err := w.App.IncomeCollector.CollectDailyIncome(c.Context(), id, now)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{
		"result":          result,
		"next_collection": w.App.IncomeCollector.NextCollectionTime(now),
	}, "")
}

func (w *WebApp) CompleteWorkSession(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid character id", nil)
	}

	if err := w.App.CompleteWorkSession(c.Context(), id); err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, nil, "work session recorded")
}

func (w *WebApp) ListUserCharacters(c *fiber.Ctx) error {
	characters, err := w.App.CharacterRepository.GetByUserID(c.Context(), c.Params("userID"))
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, characters, "")
}

func (w *WebApp) ListUserCities(c *fiber.Ctx) error {
	cities, err := w.App.CityRepository.GetByUserID(c.Context(), c.Params("userID"))
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, cities, "")
}

func (w *WebApp) GetCity(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid city id", nil)
	}

	city, err := w.App.CityRepository.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, city, "")
}

// AdvanceCity runs n simulated months and persists the final state.
func (w *WebApp) AdvanceCity(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid city id", nil)
	}
	months := c.QueryInt("months", 1)
	if months < 1 || months > 120 {
		return utils.SendBadRequest(c, "months must be between 1 and 120", nil)
	}

	city, err := w.App.Scheduler.RunMonths(c.Context(), id, months)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, city, "")
}

func (w *WebApp) AddZone(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid city id", nil)
	}
	var req models.AddZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "invalid request body", nil)
	}

	return w.mutateCity(c, id, func(city gamemodels.City) (gamemodels.City, error) {
		return w.Sim.AddZone(city, sim.ZoneType(req.Zone))
	})
}

func (w *WebApp) BuildRoads(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid city id", nil)
	}
	var req models.BuildRoadsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "invalid request body", nil)
	}
	if req.Count < 1 {
		return utils.SendBadRequest(c, "count must be positive", nil)
	}

	return w.mutateCity(c, id, func(city gamemodels.City) (gamemodels.City, error) {
		return w.Sim.BuildRoads(city, req.Count)
	})
}

func (w *WebApp) SetTaxRate(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid city id", nil)
	}
	var req models.SetTaxRateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "invalid request body", nil)
	}

	return w.mutateCity(c, id, func(city gamemodels.City) (gamemodels.City, error) {
		return w.Sim.SetTaxRate(city, req.Rate), nil
	})
}

// mutateCity loads a city, applies fn and persists the result.
func (w *WebApp) mutateCity(c *fiber.Ctx, id int64, fn func(gamemodels.City) (gamemodels.City, error)) error {
	city, err := w.App.CityRepository.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	updated, err := fn(*city)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	if err := w.App.CityRepository.Update(c.Context(), &updated); err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, updated, "")
}

func (w *WebApp) PropertySuggestions(c *fiber.Ctx) error {
	budget := int64(c.QueryInt("budget", 0))
	if budget <= 0 {
		return utils.SendBadRequest(c, "budget must be positive", nil)
	}
	return utils.SendSuccess(c, property.Suggestions(budget), "")
}

func (w *WebApp) PurchaseProperty(c *fiber.Ctx) error {
	var req models.PurchasePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "invalid request body", nil)
	}
	if req.CharacterID == 0 {
		return utils.SendBadRequest(c, "character_id is required", nil)
	}

	purchased, err := w.App.PropertyEngine.Purchase(c.Context(), req.CharacterID,
		gamemodels.PropertyType(req.Type), property.PurchaseOptions{
			Name:            req.Name,
			City:            req.City,
			LocationPremium: req.LocationPremium,
		})
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendCreated(c, purchased, "property purchased")
}

func (w *WebApp) UpgradeProperty(c *fiber.Ctx) error {
	return w.propertyAction(c, func(characterID, propertyID int64) (interface{}, error) {
		return w.App.PropertyEngine.Upgrade(c.Context(), characterID, propertyID)
	})
}

func (w *WebApp) HireWorker(c *fiber.Ctx) error {
	return w.propertyAction(c, func(characterID, propertyID int64) (interface{}, error) {
		return w.App.PropertyEngine.HireWorker(c.Context(), characterID, propertyID)
	})
}

func (w *WebApp) SellProperty(c *fiber.Ctx) error {
	return w.propertyAction(c, func(characterID, propertyID int64) (interface{}, error) {
		return w.App.PropertyEngine.Sell(c.Context(), characterID, propertyID)
	})
}

// propertyAction parses the property id and acting character, runs the
// engine operation and maps the outcome.
func (w *WebApp) propertyAction(c *fiber.Ctx, fn func(characterID, propertyID int64) (interface{}, error)) error {
	propertyID, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid property id", nil)
	}
	var req struct {
		CharacterID int64 `json:"character_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.CharacterID == 0 {
		return utils.SendBadRequest(c, "character_id is required", nil)
	}

	result, err := fn(req.CharacterID, propertyID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, result, "")
}

// ListListings returns active listings; a q parameter switches to
// fuzzy search over titles and descriptions.
func (w *WebApp) ListListings(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	if query := c.Query("q"); query != "" {
		listings, err := w.App.Exchange.SearchListings(c.Context(), query, limit)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, listings, "")
	}

	if sellerID := int64(c.QueryInt("seller_id", 0)); sellerID > 0 {
		listings, err := w.App.Exchange.SellerListings(c.Context(), sellerID)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, listings, "")
	}

	listings, err := w.App.Exchange.Listings(c.Context(), limit)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, listings, "")
}

func (w *WebApp) TrendingListings(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	listings, err := w.App.Exchange.TrendingListings(c.Context(), limit)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, listings, "")
}

func (w *WebApp) CreateListing(c *fiber.Ctx) error {
	var req models.CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "invalid request body", nil)
	}
	if req.SellerID == 0 {
		return utils.SendBadRequest(c, "seller_id is required", nil)
	}

	var listing *gamemodels.Listing
	var err error
	switch gamemodels.ListingKind(req.Kind) {
	case gamemodels.ListingKindItem:
		listing, err = w.App.Exchange.CreateItemListing(c.Context(), req.SellerID, req.ItemID, req.Quantity, req.Price)
	case gamemodels.ListingKindProperty:
		listing, err = w.App.Exchange.CreatePropertyListing(c.Context(), req.SellerID, req.PropertyID, req.Price)
	case gamemodels.ListingKindService:
		listing, err = w.App.Exchange.CreateServiceListing(c.Context(), req.SellerID, req.Title, req.Description, req.Price)
	default:
		return utils.SendBadRequest(c, "kind must be item, property or service", nil)
	}
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendCreated(c, listing, "listing created")
}

func (w *WebApp) CancelListing(c *fiber.Ctx) error {
	listingID, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid listing id", nil)
	}
	sellerID := int64(c.QueryInt("seller_id", 0))
	if sellerID == 0 {
		return utils.SendBadRequest(c, "seller_id is required", nil)
	}

	if err := w.App.Exchange.CancelListing(c.Context(), listingID, sellerID); err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendNoContent(c)
}

func (w *WebApp) PurchaseListing(c *fiber.Ctx) error {
	listingID, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid listing id", nil)
	}
	var req models.PurchaseListingRequest
	if err := c.BodyParser(&req); err != nil || req.BuyerID == 0 {
		return utils.SendBadRequest(c, "buyer_id is required", nil)
	}

	listing, err := w.App.ListingRepository.GetByID(c.Context(), listingID)
	if err != nil {
		return utils.SendDomainError(c, err)
	}

	var result interface{}
	if listing.Kind == gamemodels.ListingKindItem {
		result, err = w.App.Exchange.PurchaseItem(c.Context(), req.BuyerID, listingID, req.Quantity)
	} else {
		result, err = w.App.Exchange.PurchaseListing(c.Context(), req.BuyerID, listingID)
	}
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, result, "purchase settled")
}

func (w *WebApp) MarketStats(c *fiber.Ctx) error {
	stats, err := w.App.Exchange.MarketStats(c.Context())
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, stats, "")
}

func (w *WebApp) PriceHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	history, err := w.App.Exchange.PriceHistory(c.Context(), limit)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, history, "")
}

func (w *WebApp) MakeOffer(c *fiber.Ctx) error {
	var req models.MakeOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendBadRequest(c, "invalid request body", nil)
	}
	if req.BuyerID == 0 || req.ListingID == 0 {
		return utils.SendBadRequest(c, "buyer_id and listing_id are required", nil)
	}

	offer, err := w.App.Exchange.MakeOffer(c.Context(), req.BuyerID, req.ListingID, req.Price, req.Message)
	if err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendCreated(c, offer, "offer made")
}

// AcceptOffer accepts and settles the offer in one transaction; money
// and the asset move before the response is sent.
func (w *WebApp) AcceptOffer(c *fiber.Ctx) error {
	return w.offerAction(c, w.App.Exchange.AcceptOffer)
}

func (w *WebApp) RejectOffer(c *fiber.Ctx) error {
	return w.offerAction(c, w.App.Exchange.RejectOffer)
}

func (w *WebApp) CancelOffer(c *fiber.Ctx) error {
	return w.offerAction(c, w.App.Exchange.CancelOffer)
}

func (w *WebApp) offerAction(c *fiber.Ctx, fn func(ctx context.Context, actorID, offerID int64) error) error {
	offerID, err := paramID(c, "id")
	if err != nil {
		return utils.SendBadRequest(c, "invalid offer id", nil)
	}
	var req models.OfferActionRequest
	if err := c.BodyParser(&req); err != nil || req.ActorID == 0 {
		return utils.SendBadRequest(c, "actor_id is required", nil)
	}

	if err := fn(c.Context(), req.ActorID, offerID); err != nil {
		return utils.SendDomainError(c, err)
	}
	return utils.SendSuccess(c, nil, "")
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}
