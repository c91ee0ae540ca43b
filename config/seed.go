package config

import (
	"encoding/json"
	"log"
	"time"

	"nomada-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func mustParseTime(layout, value string) time.Time {
	t, err := time.Parse(layout, value)
	if err != nil {
		log.Fatalf("Error parsing time for seeding (%s): %v", value, err)
	}
	return t
}

func jsonList(items ...string) datatypes.JSON {
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}

func jsonOptions(opts ...models.MenuItemOption) datatypes.JSON {
	b, _ := json.Marshal(opts)
	return datatypes.JSON(b)
}

// Seed loads the compiled-in defaults into every collection that is empty.
// An empty table is never trusted as "the hotel has no rooms" — it means the
// data was lost or this is a first boot, so the defaults go in and the event
// is logged.
func Seed(db *gorm.DB) {
	seedAdmins(db)
	seedSettings(db)
	seedRooms(db)
	seedBookings(db)
	seedMenu(db)
	seedOrders(db)
	seedActivities(db)
	seedPromotions(db)
	seedTickets(db)
	seedThreads(db)
	seedRequests(db)
}

// Reset wipes every guest-facing collection and reseeds the defaults. Admin
// accounts survive a reset.
func Reset(db *gorm.DB) error {
	tables := []interface{}{
		&models.Message{},
		&models.MessageThread{},
		&models.OrderItem{},
		&models.Order{},
		&models.Booking{},
		&models.Guest{},
		&models.Room{},
		&models.MenuItem{},
		&models.Activity{},
		&models.Promotion{},
		&models.MaintenanceTicket{},
		&models.GuestRequest{},
		&models.HotelSetting{},
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(table).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Println("⚠️ System data wiped, reseeding defaults")
	Seed(db)
	return nil
}

func seedAdmins(db *gorm.DB) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default admin password: %v", err)
		return
	}
	admin := models.Admin{
		FullName: "Hotel Manager",
		Username: envOrDefault("ADMIN_USERNAME", "admin@nomada.local"),
		Password: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to create default admin: %v", err)
		return
	}
	log.Println("Default admin seeded")
}

func seedSettings(db *gorm.DB) {
	var count int64
	db.Model(&models.HotelSetting{}).Count(&count)
	if count > 0 {
		return
	}

	settings := models.HotelSetting{
		Name:     "Nomada Hotel & Suites",
		Currency: "$",
		TaxRate:  0.10,
		Email:    "concierge@nomada.com",
	}
	if err := db.Create(&settings).Error; err != nil {
		log.Printf("warning: failed to seed hotel settings: %v", err)
		return
	}
	log.Println("Hotel settings seeded")
}

func seedRooms(db *gorm.DB) {
	var count int64
	db.Model(&models.Room{}).Count(&count)
	if count > 0 {
		return
	}

	rooms := []models.Room{
		{RoomNumber: "304", Name: "Nomada Origins", Type: "Signature Penthouse", Description: "Our flagship residence.", Floor: 3, Status: models.RoomStatusAvailable},
		{RoomNumber: "101", Name: "Urban Oasis", Type: "Junior Suite", Floor: 1, Status: models.RoomStatusOccupied},
		{RoomNumber: "102", Name: "Atlas View", Type: "Junior Suite", Floor: 1, Status: models.RoomStatusAvailable},
		{RoomNumber: "201", Name: "The Blue Pearl", Type: "Executive Suite", Floor: 2, Status: models.RoomStatusDirty},
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Rooms were empty, defaults seeded")
}

func seedBookings(db *gorm.DB) {
	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count > 0 {
		return
	}

	guest := models.Guest{
		FullName:       "Isabella Rossellini",
		Email:          "isa@example.com",
		PassportNumber: "A123",
		Nationality:    "Italian",
		Phone:          "+3900",
		Address:        "Via Roma 1",
		City:           "Milan",
		Country:        "Italy",
		IsReturning:    true,
	}
	if err := db.Create(&guest).Error; err != nil {
		log.Printf("warning: failed to seed guest: %v", err)
		return
	}

	booking := models.Booking{
		ReferenceCode:    "BK-7829",
		GuestID:          guest.ID,
		RoomNumber:       "304",
		CheckInDate:      mustParseTime("2006-01-02", "2023-10-01"),
		CheckOutDate:     mustParseTime("2006-01-02", "2023-10-05"),
		Status:           models.BookingStatusCheckedOut,
		TotalAmountCents: 450000,
		Channel:          models.ChannelDirect,
		IsContractSigned: true,
		IsIdVerified:     true,
		IsDepositPaid:    true,
		DoorCode:         "8821",
	}
	if err := db.Create(&booking).Error; err != nil {
		log.Printf("warning: failed to seed booking: %v", err)
		return
	}
	log.Println("Bookings were empty, defaults seeded")
}

func seedMenu(db *gorm.DB) {
	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}

	items := []models.MenuItem{
		{
			Category:    "Breakfast",
			Title:       "The Nomad Morning",
			Description: "Two organic eggs any style, beef bacon, roasted mushrooms, hash browns, and sourdough toast.",
			PriceCents:  2800,
			Available:   true,
			Ingredients: jsonList("Organic Eggs", "Beef Bacon", "Portobello Mushrooms", "Russet Potatoes", "Sourdough Bread", "Farm Butter", "Black Peppercorn"),
			CustomizationOptions: jsonOptions(
				models.MenuItemOption{Name: "Scrambled"},
				models.MenuItemOption{Name: "Fried"},
				models.MenuItemOption{Name: "Poached"},
				models.MenuItemOption{Name: "Extra Toast", PriceCents: 500},
			),
		},
		{
			Category:     "Breakfast",
			Title:        "Marrakech Sunrise",
			Description:  "Assortment of Moroccan breads (Msemen, Baghrir), honey, Amlou, olive oil, and mint tea.",
			PriceCents:   2600,
			IsVegetarian: true,
			Available:    true,
			Ingredients:  jsonList("Semolina Flour", "Organic Honey", "Argan Oil", "Almonds", "Extra Virgin Olive Oil", "Fresh Mint", "Gunpowder Green Tea"),
		},
		{
			Category:      "Breakfast",
			Title:         "Acai Wellness Bowl",
			Description:   "Organic acai blend topped with homemade granola, dragon fruit, chia seeds, and coconut flakes.",
			PriceCents:    2200,
			IsVegetarian:  true,
			Available:     true,
			Ingredients:   jsonList("Organic Acai Pulp", "Banana", "Rolled Oats", "Dragon Fruit", "Chia Seeds", "Coconut Flakes", "Agave Syrup", "Blueberries"),
			PairingReason: "Pair with Moroccan Mint Tea for a refreshing finish.",
		},
		{
			Category:      "Lunch",
			Title:         "Wagyu Beef Burger",
			Description:   "Brioche bun, truffle mayo, aged cheddar, caramelized onions, served with hand-cut fries.",
			PriceCents:    3400,
			Available:     true,
			Ingredients:   jsonList("Wagyu Beef Patty", "Brioche Bun", "Black Truffle", "Egg Yolk", "Aged Cheddar", "Yellow Onions", "Maris Piper Potatoes"),
			PairingReason: "Double down on luxury with extra Truffle Fries.",
			CustomizationOptions: jsonOptions(
				models.MenuItemOption{Name: "Medium Rare"},
				models.MenuItemOption{Name: "Medium"},
				models.MenuItemOption{Name: "Well Done"},
				models.MenuItemOption{Name: "No Onions"},
			),
		},
		{
			Category:    "Lunch",
			Title:       "Atlas Caesar Salad",
			Description: "Crisp romaine, parmesan crisps, anchovy dressing, and grilled lemon chicken breast.",
			PriceCents:  2400,
			Available:   true,
			Ingredients: jsonList("Romaine Hearts", "Parmesan Reggiano", "Anchovy Fillets", "Garlic", "Lemon Juice", "Free-range Chicken Breast", "Sourdough Croutons"),
		},
		{
			Category:    "Lunch",
			Title:       "Lobster Roll",
			Description: "Poached Atlantic lobster, celery, chives, and lemon aioli on a buttered brioche roll.",
			PriceCents:  3800,
			Available:   true,
			Ingredients: jsonList("Atlantic Lobster Tail", "Celery Stalk", "Chives", "Lemon Zest", "Homemade Mayonnaise", "Clarified Butter", "Brioche Roll"),
		},
		{
			Category:      "Dinner",
			Title:         "Royal Lamb Tagine",
			Description:   "Slow-cooked lamb shank with prunes, toasted almonds, sesame seeds, and saffron sauce.",
			PriceCents:    4200,
			Available:     true,
			Ingredients:   jsonList("Lamb Shank", "Dried Prunes", "Roasted Almonds", "White Sesame Seeds", "Saffron Threads", "Red Onion", "Ginger", "Cinnamon Stick"),
			PairingReason: "Best enjoyed with traditional Moroccan breads to soak up the sauce.",
		},
		{
			Category:     "Dinner",
			Title:        "Saffron Risotto",
			Description:  "Carnaroli rice, saffron pistils, 24-month aged parmesan, and gold leaf.",
			PriceCents:   3600,
			IsVegetarian: true,
			Available:    true,
			Ingredients:  jsonList("Carnaroli Rice", "Saffron Pistils", "Parmesan Cheese", "Unsalted Butter", "White Wine", "Edible Gold Leaf", "Vegetable Broth"),
		},
		{
			Category:    "Dinner",
			Title:       "Pan-Seared Sea Bass",
			Description: "Served with fennel purée, citrus reduction, and sautéed wild spinach.",
			PriceCents:  3800,
			Available:   true,
			Ingredients: jsonList("Sea Bass Fillet", "Fennel Bulb", "Orange Juice", "Lemon Juice", "Wild Spinach", "Garlic", "Olive Oil", "Maldon Sea Salt"),
		},
		{
			Category:     "Other",
			Title:        "Artisan Cheese Board",
			Description:  "Selection of local and imported cheeses, fig jam, walnuts, and crackers.",
			PriceCents:   2800,
			IsVegetarian: true,
			Available:    true,
			Ingredients:  jsonList("Brie de Meaux", "Roquefort", "Local Goat Cheese", "Fresh Figs", "Walnuts", "Wildflower Honey", "Artisan Crackers", "Grapes"),
		},
		{
			Category:     "Other",
			Title:        "Orange Blossom Tart",
			Description:  "Almond cream, fresh orange zest, and caramelized pistachios on a sablé breton.",
			PriceCents:   1800,
			IsVegetarian: true,
			Available:    true,
			Ingredients:  jsonList("Almond Flour", "Heavy Cream", "Organic Eggs", "Cane Sugar", "Orange Blossom Water", "Pistachios", "Butter"),
		},
		{
			Category:     "Other",
			Title:        "Truffle Fries",
			Description:  "Hand-cut fries, parmesan, black truffle oil, and garlic aioli.",
			PriceCents:   1600,
			IsVegetarian: true,
			Available:    true,
			Ingredients:  jsonList("Agria Potatoes", "Black Truffle Oil", "Parmesan Cheese", "Parsley", "Garlic", "Egg Yolk", "Lemon Juice"),
		},
	}
	if err := db.Create(&items).Error; err != nil {
		log.Printf("warning: failed to seed menu: %v", err)
		return
	}

	// Second pass: pairing suggestions reference other seeded rows.
	byTitle := map[string]uint{}
	for _, item := range items {
		byTitle[item.Title] = item.ID
	}
	pairings := map[string]string{
		"Acai Wellness Bowl": "Marrakech Sunrise",
		"Wagyu Beef Burger":  "Truffle Fries",
		"Royal Lamb Tagine":  "Marrakech Sunrise",
	}
	for from, to := range pairings {
		fromID, toID := byTitle[from], byTitle[to]
		if fromID == 0 || toID == 0 {
			continue
		}
		if err := db.Model(&models.MenuItem{}).Where("id = ?", fromID).Update("pairing_id", toID).Error; err != nil {
			log.Printf("warning: failed to link pairing for %s: %v", from, err)
		}
	}
	log.Println("Menu was empty, defaults seeded")
}

func seedOrders(db *gorm.DB) {
	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count > 0 {
		return
	}

	order := models.Order{
		RoomNumber: "304",
		GuestName:  "Isabella Rossellini",
		Status:     models.OrderStatusPending,
		PlacedAt:   time.Now().Add(-5 * time.Minute),
		TotalCents: 2800,
		Items: []models.OrderItem{
			{Title: "The Nomad Morning", Category: "Breakfast", PriceCents: 2800},
		},
	}
	if err := db.Create(&order).Error; err != nil {
		log.Printf("warning: failed to seed order: %v", err)
		return
	}
	log.Println("Orders were empty, defaults seeded")
}

func seedActivities(db *gorm.DB) {
	var count int64
	db.Model(&models.Activity{}).Count(&count)
	if count > 0 {
		return
	}

	activities := []models.Activity{
		{
			Title: "Caves of Hercules", Subtitle: "Mythical Sunset", Category: "Adventure",
			Duration: "3 Hours", Rating: 4.8, PriceCents: 8500,
			Description: `Explore the mythical limestone caves where Hercules allegedly rested. Witness the stunning "Map of Africa" opening to the Atlantic Ocean at sunset.`,
			Highlights:  jsonList("Private Transport", "Guided History", "Sunset Views", "Tea Ceremony"),
		},
		{
			Title: "Cape Spartel Lighthouse", Subtitle: "Meeting of Oceans", Category: "Sightseeing",
			Duration: "2 Hours", Rating: 4.9, PriceCents: 6000,
			Description: "Stand at the edge of the world where the Mediterranean Sea meets the Atlantic Ocean. Enjoy panoramic views from the historic lighthouse built in 1864.",
			Highlights:  jsonList("Ocean Convergence", "Historic Lighthouse", "Photo Opportunities", "Coastal Drive"),
		},
		{
			Title: "Kasbah & Medina Walk", Subtitle: "Historical Medina", Category: "Culture",
			Duration: "4 Hours", Rating: 4.7, PriceCents: 5500,
			Description: "Get lost in the labyrinth of Tangier's old city. Visit the Kasbah museum, weave through narrow blue alleys, and discover hidden artisan workshops.",
			Highlights:  jsonList("Kasbah Museum", "Artisan Shops", "Architectural Tour", "Local Pastries"),
		},
		{
			Title: "Mint Tea at Café Hafa", Subtitle: "Legendary Views", Category: "Gastronomy",
			Duration: "2 Hours", Rating: 4.6, PriceCents: 4000,
			Description: "Experience the legendary Café Hafa, a terrace café overlooking the Strait of Gibraltar that has hosted writers and musicians since 1921.",
			Highlights:  jsonList("Panoramic Views", "Traditional Mint Tea", "Historical Significance", "Relaxed Atmosphere"),
		},
		{
			Title: "American Legation Museum", Subtitle: "Art & History", Category: "Culture",
			Duration: "1.5 Hours", Rating: 4.5, PriceCents: 3000,
			Description: "Visit the only US National Historic Landmark located in a foreign country. Discover the long history of friendship between Morocco and the United States.",
			Highlights:  jsonList("Paul Bowles Wing", "Historic Art", "Architecture", "Guided Tour"),
		},
	}
	if err := db.Create(&activities).Error; err != nil {
		log.Printf("warning: failed to seed activities: %v", err)
		return
	}
	log.Println("Activities were empty, defaults seeded")
}

func seedPromotions(db *gorm.DB) {
	var count int64
	db.Model(&models.Promotion{}).Count(&count)
	if count > 0 {
		return
	}

	promos := []models.Promotion{
		{
			Title:    "Sunset Jazz on the Roof",
			Subtitle: "Live Music Tonight",
			Image:    "https://images.unsplash.com/photo-1514525253440-b393452e8d26?q=80&w=1000&auto=format&fit=crop",
			Type:     models.PromotionTypeEvent,
			Active:   true,
		},
		{
			Title:    "Spa Happy Hour",
			Subtitle: "20% Off Treatments 2pm-5pm",
			Image:    "https://images.unsplash.com/photo-1600334089648-b0d9d3028eb2?q=80&w=1000&auto=format&fit=crop",
			Type:     models.PromotionTypeOffer,
			Active:   true,
		},
	}
	if err := db.Create(&promos).Error; err != nil {
		log.Printf("warning: failed to seed promotions: %v", err)
		return
	}
	log.Println("Promotions were empty, defaults seeded")
}

func seedTickets(db *gorm.DB) {
	var count int64
	db.Model(&models.MaintenanceTicket{}).Count(&count)
	if count > 0 {
		return
	}

	ticket := models.MaintenanceTicket{
		RoomNumber:  "201",
		Issue:       "Leak",
		Description: "AC dripping.",
		Priority:    models.TicketPriorityHigh,
		Status:      models.TicketStatusOpen,
		ReportedAt:  time.Now().Add(-10 * time.Minute),
	}
	if err := db.Create(&ticket).Error; err != nil {
		log.Printf("warning: failed to seed ticket: %v", err)
		return
	}
	log.Println("Tickets were empty, defaults seeded")
}

func seedThreads(db *gorm.DB) {
	var count int64
	db.Model(&models.MessageThread{}).Count(&count)
	if count > 0 {
		return
	}

	now := time.Now()
	thread := models.MessageThread{
		GuestName:   "Thomas Anderson",
		RoomNumber:  "102",
		Channel:     models.ChannelAirbnb,
		LastMessage: "Extra pillow?",
		UnreadCount: 1,
		Messages: []models.Message{
			{Sender: models.SenderHost, Text: "Hello", SentAt: now.Add(-10 * time.Minute)},
			{Sender: models.SenderGuest, Text: "Extra pillow?", SentAt: now.Add(-5 * time.Minute)},
		},
	}
	if err := db.Create(&thread).Error; err != nil {
		log.Printf("warning: failed to seed threads: %v", err)
		return
	}
	log.Println("Threads were empty, defaults seeded")
}

func seedRequests(db *gorm.DB) {
	var count int64
	db.Model(&models.GuestRequest{}).Count(&count)
	if count > 0 {
		return
	}

	requests := []models.GuestRequest{
		{
			GuestName:  "Thomas Anderson",
			RoomNumber: "102",
			Type:       models.RequestTypeTransport,
			Title:      "Rent Range Rover",
			Details:    "Full day rental, tomorrow 9am",
			Status:     models.RequestStatusPending,
		},
		{
			GuestName:  "Isabella Rossellini",
			RoomNumber: "304",
			Type:       models.RequestTypeSpaGym,
			Title:      "Hammam Booking",
			Details:    "2 Guests, 5pm Today",
			Status:     models.RequestStatusProcessing,
		},
	}
	if err := db.Create(&requests).Error; err != nil {
		log.Printf("warning: failed to seed guest requests: %v", err)
		return
	}
	log.Println("Guest requests were empty, defaults seeded")
}
