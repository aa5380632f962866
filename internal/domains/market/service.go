// Package market serves the farmer price board: per-crop quotes across the
// three buyer channels and the week's price trend. Quotes are a curated
// static table until a mandi feed integration lands.
package market

import (
	"context"
	"errors"
)

var ErrUnknownCrop = errors.New("unknown crop")

// CropQuote compares today's price per quintal across buyer channels.
type CropQuote struct {
	Name    string `json:"name"`
	Mandi   int    `json:"mandi"`   // APMC regulated market
	FPO     int    `json:"fpo"`     // direct farmer producer organisation
	Private int    `json:"private"` // local middleman
	Trend   string `json:"trend"`
}

// TrendPoint is one day of the weekly channel comparison.
type TrendPoint struct {
	Day     string `json:"day"`
	Mandi   int    `json:"mandi"`
	FPO     int    `json:"fpo"`
	Private int    `json:"private"`
}

// SellingAdvice is the recommendation shown with a crop's quote.
type SellingAdvice struct {
	Window         string `json:"window"`
	Reason         string `json:"reason"`
	Recommendation string `json:"recommendation"`
	Detail         string `json:"detail"`
}

type MarketService interface {
	Quotes(ctx context.Context) ([]CropQuote, error)
	Quote(ctx context.Context, crop string) (*CropQuote, error)
	Trend(ctx context.Context) ([]TrendPoint, error)
	Advice(ctx context.Context, crop string) (*SellingAdvice, error)
}

var cropQuotes = []CropQuote{
	{Name: "Wheat", Mandi: 2125, FPO: 2200, Private: 1950, Trend: "+2.5%"},
	{Name: "Rice (Paddy)", Mandi: 2040, FPO: 2100, Private: 1850, Trend: "+1.2%"},
	{Name: "Mustard", Mandi: 5450, FPO: 5600, Private: 5200, Trend: "-0.8%"},
	{Name: "Soybean", Mandi: 4600, FPO: 4750, Private: 4300, Trend: "+4.1%"},
}

var weekTrend = []TrendPoint{
	{Day: "Mon", Mandi: 2100, FPO: 2150, Private: 1900},
	{Day: "Tue", Mandi: 2110, FPO: 2160, Private: 1920},
	{Day: "Wed", Mandi: 2115, FPO: 2180, Private: 1910},
	{Day: "Thu", Mandi: 2120, FPO: 2190, Private: 1940},
	{Day: "Fri", Mandi: 2125, FPO: 2200, Private: 1950},
}

type marketService struct{}

func NewMarketService() MarketService {
	return &marketService{}
}

// Quotes implements MarketService
func (s *marketService) Quotes(ctx context.Context) ([]CropQuote, error) {
	out := make([]CropQuote, len(cropQuotes))
	copy(out, cropQuotes)
	return out, nil
}

// Quote implements MarketService
func (s *marketService) Quote(ctx context.Context, crop string) (*CropQuote, error) {
	for _, q := range cropQuotes {
		if q.Name == crop {
			quote := q
			return &quote, nil
		}
	}
	return nil, ErrUnknownCrop
}

// Trend implements MarketService
func (s *marketService) Trend(ctx context.Context) ([]TrendPoint, error) {
	out := make([]TrendPoint, len(weekTrend))
	copy(out, weekTrend)
	return out, nil
}

// Advice implements MarketService
func (s *marketService) Advice(ctx context.Context, crop string) (*SellingAdvice, error) {
	if _, err := s.Quote(ctx, crop); err != nil {
		return nil, err
	}
	return &SellingAdvice{
		Window:         "Next 3 to 5 Days",
		Reason:         crop + " prices are projected to peak due to high FPO demand and low local mandi arrivals.",
		Recommendation: "Hold & Sell Later",
		Detail:         "Wait for FPO price to cross ₹2,200/qtl for maximum profit.",
	}, nil
}
