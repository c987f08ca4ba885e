package memory

import (
	"voice-ecommerce-be/internal/model"
)

// CatalogRepository serves the static product table. The table is read-only
// and shared across all sessions without locking.
type CatalogRepository struct {
	products []model.Product
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{products: products}
}

// All returns the catalog in canonical order. Callers must not mutate the
// returned slice elements.
func (r *CatalogRepository) All() []model.Product {
	return r.products
}

func (r *CatalogRepository) FindByID(id string) (model.Product, bool) {
	for _, p := range r.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

var products = []model.Product{
	// Mobiles
	{
		ID:        "MOB001",
		Name:      "Samsung Galaxy M14 5G",
		Category:  "mobiles",
		Brand:     "Samsung",
		Price:     11999,
		Rating:    4.2,
		Thumbnail: "https://images.unsplash.com/photo-1610945415295-d9bbf067e59c?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "6.6 inch FHD+ LCD",
			"processor": "Exynos 1330",
			"ram":       "4GB",
			"storage":   "64GB",
			"battery":   "6000mAh",
			"camera":    "50MP Triple Camera",
		},
		InStock:     true,
		Description: "Budget 5G smartphone with massive 6000mAh battery and 50MP camera",
	},
	{
		ID:        "MOB002",
		Name:      "iPhone 15",
		Category:  "mobiles",
		Brand:     "Apple",
		Price:     79999,
		Rating:    4.7,
		Thumbnail: "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "6.1 inch Super Retina XDR OLED",
			"processor": "A16 Bionic",
			"ram":       "6GB",
			"storage":   "128GB",
			"battery":   "3349mAh",
			"camera":    "48MP Dual Camera",
		},
		InStock:     true,
		Description: "Latest iPhone with Dynamic Island, USB-C, and advanced camera system",
	},
	{
		ID:        "MOB003",
		Name:      "OnePlus 12",
		Category:  "mobiles",
		Brand:     "OnePlus",
		Price:     64999,
		Rating:    4.5,
		Thumbnail: "https://images.unsplash.com/photo-1585060544812-6b45742d762f?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "6.82 inch 2K LTPO AMOLED",
			"processor": "Snapdragon 8 Gen 3",
			"ram":       "12GB",
			"storage":   "256GB",
			"battery":   "5400mAh",
			"camera":    "50MP Hasselblad Triple",
		},
		InStock:     true,
		Description: "Flagship killer with Hasselblad cameras and 100W fast charging",
	},
	{
		ID:        "MOB004",
		Name:      "Redmi Note 13 Pro",
		Category:  "mobiles",
		Brand:     "Xiaomi",
		Price:     24999,
		Rating:    4.3,
		Thumbnail: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "6.67 inch AMOLED 120Hz",
			"processor": "Snapdragon 7s Gen 2",
			"ram":       "8GB",
			"storage":   "128GB",
			"battery":   "5100mAh",
			"camera":    "200MP Main Camera",
		},
		InStock:     true,
		Description: "200MP camera phone with premium AMOLED display",
	},
	{
		ID:        "MOB005",
		Name:      "Samsung Galaxy S24 Ultra",
		Category:  "mobiles",
		Brand:     "Samsung",
		Price:     134999,
		Rating:    4.8,
		Thumbnail: "https://images.unsplash.com/photo-1610945415295-d9bbf067e59c?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "6.8 inch QHD+ Dynamic AMOLED",
			"processor": "Snapdragon 8 Gen 3",
			"ram":       "12GB",
			"storage":   "256GB",
			"battery":   "5000mAh",
			"camera":    "200MP Quad Camera with S Pen",
		},
		InStock:     true,
		Description: "Ultimate Android flagship with S Pen and Galaxy AI features",
	},
	{
		ID:        "MOB006",
		Name:      "Realme Narzo 60",
		Category:  "mobiles",
		Brand:     "Realme",
		Price:     14999,
		Rating:    4.1,
		Thumbnail: "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "6.4 inch AMOLED 90Hz",
			"processor": "MediaTek Dimensity 6020",
			"ram":       "6GB",
			"storage":   "128GB",
			"battery":   "5000mAh",
			"camera":    "64MP Dual Camera",
		},
		InStock:     true,
		Description: "Stylish mid-range phone with AMOLED display and fast charging",
	},
	{
		ID:        "MOB007",
		Name:      "iPhone 15 Pro Max",
		Category:  "mobiles",
		Brand:     "Apple",
		Price:     149999,
		Rating:    4.9,
		Thumbnail: "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "6.7 inch Super Retina XDR OLED",
			"processor": "A17 Pro",
			"ram":       "8GB",
			"storage":   "256GB",
			"battery":   "4422mAh",
			"camera":    "48MP Pro Camera System",
		},
		InStock:     false,
		Description: "Most powerful iPhone ever with titanium design and A17 Pro chip",
	},
	{
		ID:        "MOB008",
		Name:      "Poco X6 Pro",
		Category:  "mobiles",
		Brand:     "Poco",
		Price:     26999,
		Rating:    4.4,
		Thumbnail: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "6.67 inch AMOLED 120Hz",
			"processor": "MediaTek Dimensity 8300 Ultra",
			"ram":       "8GB",
			"storage":   "256GB",
			"battery":   "5000mAh",
			"camera":    "64MP OIS Triple Camera",
		},
		InStock:     true,
		Description: "Performance beast with flagship-level gaming capabilities",
	},
	{
		ID:        "MOB009",
		Name:      "Vivo V30 Pro",
		Category:  "mobiles",
		Brand:     "Vivo",
		Price:     46999,
		Rating:    4.3,
		Thumbnail: "https://images.unsplash.com/photo-1585060544812-6b45742d762f?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "6.78 inch AMOLED 120Hz",
			"processor": "MediaTek Dimensity 8200",
			"ram":       "12GB",
			"storage":   "256GB",
			"battery":   "5000mAh",
			"camera":    "50MP ZEISS Triple Camera",
		},
		InStock:     true,
		Description: "Camera-focused phone with ZEISS optics and studio-quality portraits",
	},
	{
		ID:        "MOB010",
		Name:      "Motorola Edge 50 Pro",
		Category:  "mobiles",
		Brand:     "Motorola",
		Price:     35999,
		Rating:    4.2,
		Thumbnail: "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "6.7 inch pOLED 144Hz",
			"processor": "Snapdragon 7 Gen 3",
			"ram":       "8GB",
			"storage":   "256GB",
			"battery":   "4500mAh",
			"camera":    "50MP Triple Camera",
		},
		InStock:     true,
		Description: "Premium design with 125W TurboPower charging",
	},
	{
		ID:        "MOB011",
		Name:      "Nothing Phone 2a",
		Category:  "mobiles",
		Brand:     "Nothing",
		Price:     23999,
		Rating:    4.4,
		Thumbnail: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "6.7 inch AMOLED 120Hz",
			"processor": "MediaTek Dimensity 7200 Pro",
			"ram":       "8GB",
			"storage":   "128GB",
			"battery":   "5000mAh",
			"camera":    "50MP Dual Camera",
		},
		InStock:     true,
		Description: "Unique Glyph interface with clean Nothing OS experience",
	},
	{
		ID:        "MOB012",
		Name:      "iQOO Neo 9 Pro",
		Category:  "mobiles",
		Brand:     "iQOO",
		Price:     36999,
		Rating:    4.5,
		Thumbnail: "https://images.unsplash.com/photo-1585060544812-6b45742d762f?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "6.78 inch AMOLED 144Hz",
			"processor": "Snapdragon 8 Gen 2",
			"ram":       "8GB",
			"storage":   "256GB",
			"battery":   "5160mAh",
			"camera":    "50MP OIS Dual Camera",
		},
		InStock:     true,
		Description: "Gaming powerhouse with flagship Snapdragon processor",
	},

	// Laptops
	{
		ID:        "LAP001",
		Name:      "MacBook Air M3",
		Category:  "laptops",
		Brand:     "Apple",
		Price:     114999,
		Rating:    4.8,
		Thumbnail: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "13.6 inch Liquid Retina",
			"processor": "Apple M3 8-core",
			"ram":       "8GB",
			"storage":   "256GB SSD",
			"battery":   "18 hours",
			"graphics":  "10-core GPU",
		},
		InStock:     true,
		Description: "Supercharged by M3 chip with all-day battery life",
	},
	{
		ID:        "LAP002",
		Name:      "Dell XPS 15",
		Category:  "laptops",
		Brand:     "Dell",
		Price:     169999,
		Rating:    4.6,
		Thumbnail: "https://images.unsplash.com/photo-1593642632559-0c6d3fc62b89?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "15.6 inch 3.5K OLED",
			"processor": "Intel Core i7-13700H",
			"ram":       "16GB",
			"storage":   "512GB SSD",
			"battery":   "13 hours",
			"graphics":  "NVIDIA RTX 4060",
		},
		InStock:     true,
		Description: "Premium ultrabook with stunning OLED display",
	},
	{
		ID:        "LAP003",
		Name:      "HP Pavilion 15",
		Category:  "laptops",
		Brand:     "HP",
		Price:     54999,
		Rating:    4.2,
		Thumbnail: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "15.6 inch FHD IPS",
			"processor": "AMD Ryzen 5 7530U",
			"ram":       "8GB",
			"storage":   "512GB SSD",
			"battery":   "8 hours",
			"graphics":  "AMD Radeon Graphics",
		},
		InStock:     true,
		Description: "Reliable everyday laptop with modern design",
	},
	{
		ID:        "LAP004",
		Name:      "Lenovo ThinkPad X1 Carbon",
		Category:  "laptops",
		Brand:     "Lenovo",
		Price:     189999,
		Rating:    4.7,
		Thumbnail: "https://images.unsplash.com/photo-1593642632559-0c6d3fc62b89?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "14 inch 2.8K OLED",
			"processor": "Intel Core Ultra 7 155H",
			"ram":       "32GB",
			"storage":   "1TB SSD",
			"battery":   "15 hours",
			"graphics":  "Intel Arc Graphics",
		},
		InStock:     true,
		Description: "Ultimate business ultrabook with military-grade durability",
	},
	{
		ID:        "LAP005",
		Name:      "ASUS ROG Strix G16",
		Category:  "laptops",
		Brand:     "ASUS",
		Price:     134999,
		Rating:    4.5,
		Thumbnail: "https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "16 inch QHD 240Hz",
			"processor": "Intel Core i9-13980HX",
			"ram":       "16GB",
			"storage":   "1TB SSD",
			"battery":   "4 hours",
			"graphics":  "NVIDIA RTX 4070",
		},
		InStock:     true,
		Description: "High-performance gaming laptop with RGB lighting",
	},
	{
		ID:        "LAP006",
		Name:      "Acer Aspire 5",
		Category:  "laptops",
		Brand:     "Acer",
		Price:     42999,
		Rating:    4.1,
		Thumbnail: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "15.6 inch FHD IPS",
			"processor": "Intel Core i5-1235U",
			"ram":       "8GB",
			"storage":   "512GB SSD",
			"battery":   "10 hours",
			"graphics":  "Intel Iris Xe",
		},
		InStock:     true,
		Description: "Budget-friendly laptop perfect for students",
	},
	{
		ID:        "LAP007",
		Name:      "MacBook Pro 14 M3 Pro",
		Category:  "laptops",
		Brand:     "Apple",
		Price:     199999,
		Rating:    4.9,
		Thumbnail: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "14.2 inch Liquid Retina XDR",
			"processor": "Apple M3 Pro 12-core",
			"ram":       "18GB",
			"storage":   "512GB SSD",
			"battery":   "17 hours",
			"graphics":  "18-core GPU",
		},
		InStock:     false,
		Description: "Pro laptop for demanding creative workflows",
	},
	{
		ID:        "LAP008",
		Name:      "MSI Katana 15",
		Category:  "laptops",
		Brand:     "MSI",
		Price:     84999,
		Rating:    4.3,
		Thumbnail: "https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "15.6 inch FHD 144Hz",
			"processor": "Intel Core i7-13620H",
			"ram":       "16GB",
			"storage":   "512GB SSD",
			"battery":   "5 hours",
			"graphics":  "NVIDIA RTX 4060",
		},
		InStock:     true,
		Description: "Affordable gaming laptop with great performance",
	},
	{
		ID:        "LAP009",
		Name:      "HP Spectre x360",
		Category:  "laptops",
		Brand:     "HP",
		Price:     159999,
		Rating:    4.6,
		Thumbnail: "https://images.unsplash.com/photo-1593642632559-0c6d3fc62b89?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "13.5 inch 3K2K OLED Touch",
			"processor": "Intel Core Ultra 7 155H",
			"ram":       "16GB",
			"storage":   "1TB SSD",
			"battery":   "14 hours",
			"graphics":  "Intel Arc Graphics",
		},
		InStock:     true,
		Description: "Stunning 2-in-1 convertible with pen support",
	},
	{
		ID:        "LAP010",
		Name:      "Lenovo IdeaPad Slim 3",
		Category:  "laptops",
		Brand:     "Lenovo",
		Price:     36999,
		Rating:    4.0,
		Thumbnail: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"display":   "15.6 inch FHD",
			"processor": "AMD Ryzen 3 7320U",
			"ram":       "8GB",
			"storage":   "256GB SSD",
			"battery":   "8 hours",
			"graphics":  "AMD Radeon Graphics",
		},
		InStock:     true,
		Description: "Entry-level laptop for basic computing needs",
	},

	// Accessories
	{
		ID:        "ACC001",
		Name:      "Sony WH-1000XM5",
		Category:  "accessories",
		Brand:     "Sony",
		Price:     29999,
		Rating:    4.8,
		Thumbnail: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"type":         "Over-ear Headphones",
			"connectivity": "Bluetooth 5.2",
			"battery":      "30 hours",
			"features":     "ANC, LDAC, Multipoint",
		},
		InStock:     true,
		Description: "Industry-leading noise cancellation headphones",
	},
	{
		ID:        "ACC002",
		Name:      "Apple AirPods Pro 2",
		Category:  "accessories",
		Brand:     "Apple",
		Price:     24999,
		Rating:    4.7,
		Thumbnail: "https://images.unsplash.com/photo-1600294037681-c80b4cb5b434?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"type":         "True Wireless Earbuds",
			"connectivity": "Bluetooth 5.3",
			"battery":      "6 hours (30 with case)",
			"features":     "ANC, Adaptive Audio, USB-C",
		},
		InStock:     true,
		Description: "Premium earbuds with Adaptive Audio and USB-C",
	},
	{
		ID:        "ACC003",
		Name:      "Samsung Galaxy Watch 6",
		Category:  "accessories",
		Brand:     "Samsung",
		Price:     28999,
		Rating:    4.4,
		Thumbnail: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"type":     "Smartwatch",
			"display":  "1.5 inch AMOLED",
			"battery":  "40 hours",
			"features": "Health tracking, GPS, NFC",
		},
		InStock:     true,
		Description: "Advanced health tracking with sleek design",
	},
	{
		ID:        "ACC004",
		Name:      "Logitech MX Master 3S",
		Category:  "accessories",
		Brand:     "Logitech",
		Price:     9999,
		Rating:    4.6,
		Thumbnail: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"type":         "Wireless Mouse",
			"connectivity": "Bluetooth, USB receiver",
			"battery":      "70 days",
			"features":     "8000 DPI, MagSpeed scroll",
		},
		InStock:     true,
		Description: "Professional productivity mouse with quiet clicks",
	},
	{
		ID:        "ACC005",
		Name:      "Apple Watch Ultra 2",
		Category:  "accessories",
		Brand:     "Apple",
		Price:     89999,
		Rating:    4.9,
		Thumbnail: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"type":     "Smartwatch",
			"display":  "1.92 inch OLED",
			"battery":  "36 hours",
			"features": "Diving, GPS, Action Button",
		},
		InStock:     true,
		Description: "Most rugged Apple Watch for extreme adventures",
	},
	{
		ID:        "ACC006",
		Name:      "JBL Flip 6",
		Category:  "accessories",
		Brand:     "JBL",
		Price:     9999,
		Rating:    4.5,
		Thumbnail: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"type":         "Portable Speaker",
			"connectivity": "Bluetooth 5.1",
			"battery":      "12 hours",
			"features":     "IP67, PartyBoost",
		},
		InStock:     true,
		Description: "Portable waterproof speaker with powerful bass",
	},
	{
		ID:        "ACC007",
		Name:      "Anker PowerCore 26800",
		Category:  "accessories",
		Brand:     "Anker",
		Price:     4999,
		Rating:    4.4,
		Thumbnail: "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"type":     "Power Bank",
			"capacity": "26800mAh",
			"output":   "3A Max",
			"features": "Dual USB, PowerIQ",
		},
		InStock:     true,
		Description: "High-capacity power bank for multiple charges",
	},
	{
		ID:        "ACC008",
		Name:      "Razer DeathAdder V3",
		Category:  "accessories",
		Brand:     "Razer",
		Price:     6999,
		Rating:    4.6,
		Thumbnail: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"type":         "Gaming Mouse",
			"connectivity": "Wired",
			"sensor":       "30000 DPI",
			"features":     "Ergonomic, Optical switches",
		},
		InStock:     true,
		Description: "Esports-grade gaming mouse with ultra-fast switches",
	},
	{
		ID:        "ACC009",
		Name:      "Bose QuietComfort Earbuds II",
		Category:  "accessories",
		Brand:     "Bose",
		Price:     22999,
		Rating:    4.6,
		Thumbnail: "https://images.unsplash.com/photo-1600294037681-c80b4cb5b434?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"type":         "True Wireless Earbuds",
			"connectivity": "Bluetooth 5.3",
			"battery":      "6 hours (24 with case)",
			"features":     "CustomTune ANC, Aware Mode",
		},
		InStock:     true,
		Description: "World-class noise cancellation in compact earbuds",
	},
	{
		ID:        "ACC010",
		Name:      "SanDisk Extreme Pro 256GB",
		Category:  "accessories",
		Brand:     "SanDisk",
		Price:     3499,
		Rating:    4.5,
		Thumbnail: "https://images.unsplash.com/photo-1597872200969-2b65d56bd16b?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"type":     "USB Flash Drive",
			"capacity": "256GB",
			"speed":    "420MB/s Read",
			"features": "USB 3.2, Password Protection",
		},
		InStock:     true,
		Description: "Ultra-fast USB drive for professionals",
	},
	{
		ID:        "ACC011",
		Name:      "Keychron K2 V2",
		Category:  "accessories",
		Brand:     "Keychron",
		Price:     7499,
		Rating:    4.5,
		Thumbnail: "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"type":         "Mechanical Keyboard",
			"connectivity": "Bluetooth, USB-C",
			"battery":      "72 hours",
			"features":     "Hot-swappable, RGB backlight",
		},
		InStock:     true,
		Description: "Compact wireless mechanical keyboard for Mac & Windows",
	},
	{
		ID:        "ACC012",
		Name:      "boAt Rockerz 450",
		Category:  "accessories",
		Brand:     "boAt",
		Price:     1499,
		Rating:    4.1,
		Thumbnail: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop",
		Specs: map[string]string{
			"type":         "On-ear Headphones",
			"connectivity": "Bluetooth 4.2",
			"battery":      "15 hours",
			"features":     "Padded ear cushions, Aux support",
		},
		InStock:     true,
		Description: "Budget-friendly wireless headphones with good bass",
	},
}
