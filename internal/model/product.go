package model

// Product is a catalog record. IDs are plain integers assigned by the
// seeding process, not ObjectIDs.
type Product struct {
	ID           int     `json:"id" bson:"_id"`
	ProductName  string  `json:"productName" bson:"productName"`
	Category     string  `json:"category" bson:"category"`
	Company      string  `json:"company" bson:"company"`
	Availability string  `json:"availability" bson:"availability"`
	Price        float64 `json:"price" bson:"price"`
	Discount     float64 `json:"discount" bson:"discount"`
	Rating       float64 `json:"rating" bson:"rating"`
}
