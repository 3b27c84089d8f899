package models

// Brand is a watched brand name plus the aliases that count towards it.
type Brand struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

// BrandWatchlist keeps the configured order; the mention table mirrors it.
type BrandWatchlist []Brand
