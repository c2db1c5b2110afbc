// Command seed provisions the demo accounts and a starter catalog.
// Safe to re-run: users are matched by email and the catalog is only
// written when the products table is empty.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Catalinvisual/AuraMarket/internal/data/entity"
	"github.com/Catalinvisual/AuraMarket/internal/data/repository"
	"github.com/Catalinvisual/AuraMarket/pkg/database"
	"github.com/Catalinvisual/AuraMarket/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type seedProduct struct {
	name        string
	description string
	price       string
	stock       int
	image       string
	featured    bool
	features    []string
}

type seedCategory struct {
	name     string
	image    string
	products []seedProduct
}

var catalog = []seedCategory{
	{
		name:  "Electronics",
		image: "https://images.unsplash.com/photo-1550009158-9ebf69173e03?auto=format&fit=crop&w=800&q=80",
		products: []seedProduct{
			{
				name:        "Smartphone X Pro",
				description: "The latest smartphone with an advanced camera system, all-day battery life, and the fastest chip ever in a smartphone.",
				price:       "999.99",
				stock:       50,
				image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?auto=format&fit=crop&w=800&q=80",
				featured:    true,
				features:    []string{"5G Capable", "OLED Display", "Face ID"},
			},
			{
				name:        "Wireless Noise Cancelling Headphones",
				description: "Immerse yourself in music with industry-leading noise cancellation and premium sound quality.",
				price:       "299.99",
				stock:       100,
				image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=800&q=80",
				features:    []string{"Active Noise Cancellation", "30-hour Battery", "Touch Controls"},
			},
			{
				name:        "Laptop UltraSlim",
				description: "Powerful performance in an ultra-slim design, perfect for professionals on the go.",
				price:       "1299.99",
				stock:       25,
				image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?auto=format&fit=crop&w=800&q=80",
				features:    []string{"i7 Processor", "16GB RAM", "512GB SSD"},
			},
			{
				name:        "Mechanical Keychron Keyboard",
				description: "Tactile feedback meets wireless freedom. The ultimate typing experience for developers and creators.",
				price:       "110.00",
				stock:       50,
				image:       "https://images.unsplash.com/photo-1595225476474-87563907a212?auto=format&fit=crop&w=800&q=80",
				featured:    true,
				features:    []string{"Tactile Feedback", "Wireless", "Backlit RGB"},
			},
		},
	},
	{
		name:  "Fashion",
		image: "https://images.unsplash.com/photo-1445205170230-053b83016050?auto=format&fit=crop&w=800&q=80",
		products: []seedProduct{
			{
				name:        "Classic Denim Jacket",
				description: "A timeless classic, this denim jacket adds a cool edge to any outfit.",
				price:       "89.99",
				stock:       60,
				image:       "https://images.unsplash.com/photo-1576871337622-98d48d1cf531?auto=format&fit=crop&w=800&q=80",
				features:    []string{"100% Cotton", "Vintage Wash", "Button Closure"},
			},
			{
				name:        "Summer Floral Dress",
				description: "Light and airy floral dress, perfect for summer days and garden parties.",
				price:       "59.99",
				stock:       80,
				image:       "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?auto=format&fit=crop&w=800&q=80",
				featured:    true,
				features:    []string{"Floral Print", "Midi Length", "Breathable Fabric"},
			},
			{
				name:        "Running Sneakers",
				description: "High-performance running shoes designed for comfort and speed.",
				price:       "119.99",
				stock:       45,
				image:       "https://images.unsplash.com/photo-1608231387042-66d1773070a5?auto=format&fit=crop&w=800&q=80",
				features:    []string{"Breathable Mesh", "Cushioned Sole", "Lightweight"},
			},
		},
	},
	{
		name:  "Home & Living",
		image: "https://images.unsplash.com/photo-1484101403633-562f891dc89a?auto=format&fit=crop&w=800&q=80",
		products: []seedProduct{
			{
				name:        "Modern Sofa",
				description: "A stylish and comfortable sofa that fits perfectly in any modern living room.",
				price:       "899.99",
				stock:       10,
				image:       "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?auto=format&fit=crop&w=800&q=80",
				featured:    true,
				features:    []string{"Velvet Fabric", "Solid Wood Legs", "3-Seater"},
			},
			{
				name:        "LED Desk Lamp",
				description: "Adjustable LED desk lamp with multiple brightness levels and color temperatures.",
				price:       "39.99",
				stock:       85,
				image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?auto=format&fit=crop&w=800&q=80",
				features:    []string{"Touch Control", "USB Charging Port", "Eye Care Technology"},
			},
			{
				name:        "Aromatic Candle",
				description: "Scented candle to create a relaxing atmosphere.",
				price:       "19.99",
				stock:       200,
				image:       "https://images.unsplash.com/photo-1603006905003-be475563bc59?auto=format&fit=crop&w=800&q=80",
				featured:    true,
				features:    []string{"Soy Wax", "Lavender Scent", "40h Burn Time"},
			},
		},
	},
	{
		name:  "Sports",
		image: "https://images.unsplash.com/photo-1517649763962-0c623066013b?auto=format&fit=crop&w=800&q=80",
		products: []seedProduct{
			{
				name:        "Yoga Mat",
				description: "Non-slip yoga mat with alignment lines for optimal practice.",
				price:       "29.99",
				stock:       100,
				image:       "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?auto=format&fit=crop&w=800&q=80",
				features:    []string{"Non-slip Surface", "Eco-friendly Material", "Carrying Strap"},
			},
			{
				name:        "Dumbbell Set",
				description: "Adjustable dumbbell set for a complete home workout.",
				price:       "199.99",
				stock:       15,
				image:       "https://images.unsplash.com/photo-1638536532686-d610adfc8e5c?auto=format&fit=crop&w=800&q=80",
				featured:    true,
				features:    []string{"Adjustable Weight", "Compact Design", "Durable Cast Iron"},
			},
			{
				name:        "Water Bottle",
				description: "Insulated stainless steel water bottle to keep your drinks cold or hot.",
				price:       "19.99",
				stock:       200,
				image:       "https://images.unsplash.com/photo-1602143407151-7111542de6e8?auto=format&fit=crop&w=800&q=80",
				features:    []string{"Vacuum Insulation", "Leak-proof Lid", "BPA Free"},
			},
		},
	},
	{
		name:  "Toys & Hobbies",
		image: "https://images.unsplash.com/photo-1566576912902-1d6db6e8d35a?auto=format&fit=crop&w=800&q=80",
		products: []seedProduct{
			{
				name:        "Drone with Camera",
				description: "Foldable drone with 4K camera for stunning aerial photography.",
				price:       "249.99",
				stock:       20,
				image:       "https://images.unsplash.com/photo-1473968512647-3e447244af8f?auto=format&fit=crop&w=800&q=80",
				featured:    true,
				features:    []string{"4K Camera", "GPS Return", "20 min Flight Time"},
			},
			{
				name:        "Building Blocks Set",
				description: "Creative building blocks set for endless construction possibilities.",
				price:       "49.99",
				stock:       80,
				image:       "https://images.unsplash.com/photo-1596461404969-9ae70f2830c1?auto=format&fit=crop&w=800&q=80",
				features:    []string{"1000+ Pieces", "Compatible with Major Brands", "Educational"},
			},
			{
				name:        "Chess Set",
				description: "Classic wooden chess set for strategy games.",
				price:       "39.99",
				stock:       50,
				image:       "https://images.unsplash.com/photo-1529699211952-734e80c4d42b?auto=format&fit=crop&w=800&q=80",
				features:    []string{"Wooden Board", "Hand Carved Pieces", "Folding Design"},
			},
		},
	},
	{
		name:  "Books",
		image: "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?auto=format&fit=crop&w=800&q=80",
		products: []seedProduct{
			{
				name:        "Sci-Fi Novel",
				description: "A gripping science fiction novel about space exploration.",
				price:       "14.99",
				stock:       100,
				image:       "https://images.unsplash.com/photo-1544947950-fa07a98d237f?auto=format&fit=crop&w=800&q=80",
				featured:    true,
				features:    []string{"Hardcover", "Best Seller", "Award Winning"},
			},
			{
				name:        "Cookbook",
				description: "Collection of delicious recipes from around the world.",
				price:       "29.99",
				stock:       60,
				image:       "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?auto=format&fit=crop&w=800&q=80",
				features:    []string{"Full Color Photos", "Easy Instructions", "Vegetarian Options"},
			},
		},
	},
	{
		name:  "Beauty",
		image: "https://images.unsplash.com/photo-1612817288484-6f916006741a?auto=format&fit=crop&w=800&q=80",
		products: []seedProduct{
			{
				name:        "Face Cream",
				description: "Hydrating face cream for all skin types.",
				price:       "34.99",
				stock:       80,
				image:       "https://images.unsplash.com/photo-1611930022073-b7a4ba5fcccd?auto=format&fit=crop&w=800&q=80",
				featured:    true,
				features:    []string{"Anti-aging", "Vitamin E", "Night & Day"},
			},
			{
				name:        "Perfume Bottle",
				description: "Elegant perfume bottle with a floral scent.",
				price:       "59.99",
				stock:       40,
				image:       "https://images.unsplash.com/photo-1541643600914-78b084683601?auto=format&fit=crop&w=800&q=80",
				features:    []string{"Eau de Parfum", "Floral Notes", "Gift Box"},
			},
		},
	},
	{
		name:  "Automotive",
		image: "https://images.unsplash.com/photo-1503376763036-066120622c74?auto=format&fit=crop&w=800&q=80",
		products: []seedProduct{
			{
				name:        "Car Wax",
				description: "Premium car wax for a showroom shine.",
				price:       "19.99",
				stock:       60,
				image:       "https://images.unsplash.com/photo-1619642751034-765dfdf7c58e?auto=format&fit=crop&w=800&q=80",
				features:    []string{"Carnauba Wax", "Easy Application", "Long Lasting Protection"},
			},
			{
				name:        "Microfiber Cloths",
				description: "Pack of 3 microfiber cloths for cleaning your car.",
				price:       "9.99",
				stock:       150,
				image:       "https://images.unsplash.com/photo-1563453392212-326f5e854473?auto=format&fit=crop&w=800&q=80",
				features:    []string{"Lint Free", "Scratch Free", "Machine Washable"},
			},
		},
	},
}

func main() {
	password := flag.String("password", "123456", "password for the seeded demo accounts")
	adminEmail := flag.String("admin-email", "admin@example.com", "email of the seeded admin account")
	customerEmail := flag.String("customer-email", "client@example.com", "email of the seeded customer account")
	flag.Parse()

	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewRepository(db, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seedUsers(ctx, repo, logger, *password, *adminEmail, *customerEmail); err != nil {
		logger.Fatal("Failed to seed users", zap.Error(err))
	}

	if err := seedCatalog(ctx, repo, logger); err != nil {
		logger.Fatal("Failed to seed catalog", zap.Error(err))
	}

	logger.Info("Seeding completed")
}

func seedUsers(ctx context.Context, repo *repository.Repository, logger *zap.Logger, password, adminEmail, customerEmail string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	accounts := []entity.User{
		{Email: adminEmail, Name: "Admin User", PasswordHash: hash, Role: entity.RoleAdmin},
		{Email: customerEmail, Name: "Client User", PasswordHash: hash, Role: entity.RoleCustomer},
	}

	for i := range accounts {
		account := accounts[i]
		existing, err := repo.User.FindByEmail(ctx, account.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			logger.Info("User already exists, skipping", zap.String("email", account.Email))
			continue
		}

		now := time.Now()
		account.Base = entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.User.Create(ctx, &account); err != nil {
			return err
		}
		logger.Info("User created",
			zap.String("email", account.Email),
			zap.String("role", string(account.Role)),
		)
	}

	return nil
}

func seedCatalog(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	productCount, err := repo.Product.CountAll(ctx, repository.ProductFilter{})
	if err != nil {
		return err
	}
	categoryCount, err := repo.Category.CountAll(ctx)
	if err != nil {
		return err
	}
	// Category names are unique, so never write over an existing catalog
	if productCount > 0 || categoryCount > 0 {
		logger.Info("Catalog already populated, skipping",
			zap.Int64("products", productCount),
			zap.Int64("categories", categoryCount),
		)
		return nil
	}

	now := time.Now()
	for _, cat := range catalog {
		category := &entity.Category{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:  cat.name,
			Image: cat.image,
		}
		if err := repo.Category.Create(ctx, category); err != nil {
			return err
		}
		logger.Info("Category seeded", zap.String("name", category.Name))

		for _, prod := range cat.products {
			price, err := decimal.NewFromString(prod.price)
			if err != nil {
				return err
			}

			product := &entity.Product{
				Base: entity.Base{
					ID:        uuid.New(),
					CreatedAt: now,
					UpdatedAt: now,
				},
				Name:        prod.name,
				Description: prod.description,
				Price:       price,
				Stock:       prod.stock,
				Images:      []string{prod.image},
				Features:    prod.features,
				IsFeatured:  prod.featured,
				CategoryID:  category.ID,
			}

			if err := repo.Product.Create(ctx, product); err != nil {
				return err
			}
			logger.Info("Product seeded", zap.String("name", product.Name))
		}
	}

	return nil
}
