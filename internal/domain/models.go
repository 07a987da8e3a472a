package domain

// Piece status enum. Only these two values are ever persisted.
const (
	StatusAvailable = "available"
	StatusRented    = "rented"
)

// Fixed identifiers for the singleton settings rows.
const (
	StoreSettingsID = "settings"
	HeroSettingsID  = "hero"
)

type Category struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Slug      string `db:"slug" json:"slug"`
	IsActive  bool   `db:"is_active" json:"is_active"`
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at,omitempty"`
}

type Piece struct {
	ID          string  `db:"id" json:"id"`
	CategoryID  string  `db:"category_id" json:"category_id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description,omitempty"`
	Price       float64 `db:"price" json:"price"`
	Status      string  `db:"status" json:"status"` // available | rented
	// ImageURL mirrors ImageURLs[0] for fast single-image reads.
	// It is only ever written alongside ImagesJSON.
	ImageURL   string `db:"image_url" json:"image_url,omitempty"`
	ImagesJSON string `db:"images_json" json:"-"`
	CreatedAt  string `db:"created_at" json:"created_at"`
	UpdatedAt  string `db:"updated_at" json:"updated_at,omitempty"`

	ImageURLs []string  `db:"-" json:"image_urls"`
	Category  *Category `db:"-" json:"category,omitempty"`
}

type StoreSetting struct {
	ID           string `db:"id" json:"id"`
	StoreName    string `db:"store_name" json:"store_name"`
	InstagramURL string `db:"instagram_url" json:"instagram_url,omitempty"`
	WhatsappURL  string `db:"whatsapp_url" json:"whatsapp_url,omitempty"`
	Email        string `db:"email" json:"email,omitempty"`
	UpdatedAt    string `db:"updated_at" json:"updated_at,omitempty"`
}

// HeroSlide is a value object owned entirely by HeroSetting; slides have no
// identity of their own and are replaced wholesale on every update.
type HeroSlide struct {
	ImageURL string `json:"image_url"`
	Order    int    `json:"order"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	CTAText  string `json:"cta_text,omitempty"`
	CTALink  string `json:"cta_link,omitempty"`
	// Framing hints used by the storefront carousel.
	ImageFit       string   `json:"image_fit,omitempty"` // cover | contain | fill
	ImagePositionX *float64 `json:"image_position_x,omitempty"`
	ImagePositionY *float64 `json:"image_position_y,omitempty"`
	ImageZoom      *float64 `json:"image_zoom,omitempty"`
}

type HeroSetting struct {
	ID         string `db:"id" json:"id"`
	IsActive   bool   `db:"is_active" json:"is_active"`
	IntervalMS int    `db:"interval_ms" json:"interval_ms"`
	SlidesJSON string `db:"slides_json" json:"-"`
	UpdatedAt  string `db:"updated_at" json:"updated_at,omitempty"`
}

// HeroView is what GET /api/hero renders: the singleton settings row plus its
// decoded slide collection.
type HeroView struct {
	Settings HeroSetting `json:"settings"`
	Slides   []HeroSlide `json:"slides"`
}
