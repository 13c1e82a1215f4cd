package types

// Planet is one destination in the toy universe. ID is only populated on
// API responses assembled from default data; store-backed responses carry
// the normalized document instead.
type Planet struct {
	ID                string   `bson:"-" json:"id,omitempty"`
	Name              string   `bson:"name" json:"name"`
	Tagline           string   `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Description       string   `bson:"description,omitempty" json:"description,omitempty"`
	DistanceLY        float64  `bson:"distance_ly" json:"distance_ly"`
	Difficulty        string   `bson:"difficulty" json:"difficulty"`
	FeaturedCreatures []string `bson:"featured_creatures" json:"featured_creatures"`
	ToyCategories     []string `bson:"toy_categories" json:"toy_categories"`
	AgeRecommendation string   `bson:"age_recommendation" json:"age_recommendation"`
	TravelTime        string   `bson:"travel_time" json:"travel_time"`
	Atmosphere        string   `bson:"atmosphere,omitempty" json:"atmosphere,omitempty"`
	HeroImage         string   `bson:"hero_image,omitempty" json:"hero_image,omitempty"`
}

type Toy struct {
	Name        string  `bson:"name" json:"name"`
	Planet      string  `bson:"planet" json:"planet"`
	Theme       string  `bson:"theme" json:"theme"`
	AgeRange    string  `bson:"age_range" json:"age_range"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`
}

type Badge struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
}

type Achievement struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
}

type Profile struct {
	Username     string        `bson:"username" json:"username"`
	AvatarType   string        `bson:"avatar_type" json:"avatar_type"`
	Badges       []Badge       `bson:"badges" json:"badges"`
	Achievements []Achievement `bson:"achievements" json:"achievements"`
	SavedPlanets []string      `bson:"saved_planets" json:"saved_planets"`
	Collectibles []string      `bson:"collectibles" json:"collectibles"`
	TravelLog    []string      `bson:"travel_log" json:"travel_log"`
}

// TravelRequest is the body of POST /api/wormhole/initiate.
type TravelRequest struct {
	Planet      string `json:"planet" binding:"required"`
	ProfileName string `json:"profile_name,omitempty"`
}

// TravelResponse is the mock booking echoed back to the caller.
type TravelResponse struct {
	Status string `json:"status"`
	Planet string `json:"planet"`
	ETA    int    `json:"eta"`
	Token  string `json:"token"`
}
