package models

// RatingTierCounts buckets watched movies by rating tier.
type RatingTierCounts struct {
	Excellent int `json:"excellent" example:"12"`
	Good      int `json:"good" example:"20"`
	Average   int `json:"average" example:"7"`
	Poor      int `json:"poor" example:"3"`
}

// GenreCount is one bar of the genre histogram.
type GenreCount struct {
	Name  string `json:"name" example:"Drama"`
	Count int    `json:"count" example:"14"`
}

// CollectionStats summarizes the whole collection.
type CollectionStats struct {
	Total        int              `json:"total" example:"50"`
	Watched      int              `json:"watched" example:"42"`
	ToWatch      int              `json:"toWatch" example:"8"`
	AvgRating    float64          `json:"avgRating" example:"13.4"`
	ByRatingTier RatingTierCounts `json:"byRatingTier"`
	ByGenre      []GenreCount     `json:"byGenre"`
	TopRated     []Movie          `json:"topRated"`
}

// ImportPreview describes a parsed import awaiting confirmation.
type ImportPreview struct {
	Count   int  `json:"count" example:"42"`
	Applied bool `json:"applied" example:"false"`
}

// ExportArchive describes an export stored in object storage.
type ExportArchive struct {
	Filename  string `json:"filename" example:"sequence_export_2024-06-10.json"`
	PublicURL string `json:"public_url" example:"https://storage.example.com/sequence/exports/sequence_export_2024-06-10.json"`
	Count     int    `json:"count" example:"42"`
}
