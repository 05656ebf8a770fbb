package model

// Company name is a short code ("AMZ", "FLP"); product.company references it
// by convention only.
type Company struct {
	ID          int    `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}
